package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

// stubTransport fakes the Gemini endpoint and counts calls.
type stubTransport struct {
	calls int
	reply string
}

func (st *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	st.calls++
	payload, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": st.reply}}}},
		},
	})
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(string(payload))),
	}, nil
}

func newTestClient(reply string) (*Client, *stubTransport) {
	st := &stubTransport{reply: reply}
	c := NewClient("test-key", "test-model")
	c.httpClient = &http.Client{Transport: st}
	return c, st
}

const validQuizReply = `Here you go:
{
  "questions": [
    {"question": "Q1?", "type": "recall", "correctAnswer": "A1", "explanation": "E1"},
    {"question": "Q2?", "type": "understanding", "correctAnswer": "A2", "explanation": "E2"},
    {"question": "Q3?", "type": "application", "correctAnswer": "A3", "explanation": "E3"}
  ]
}`

func TestGenerateQuiz_TooShortSkipsRemoteCall(t *testing.T) {
	c, st := newTestClient(validQuizReply)
	_, err := c.GenerateQuiz(context.Background(), "short text", MinQuizWords-1)
	if !errors.Is(err, ErrTooShort) {
		t.Fatalf("expected ErrTooShort, got %v", err)
	}
	if st.calls != 0 {
		t.Errorf("expected no remote call, got %d", st.calls)
	}
}

func TestGenerateQuiz_AtThresholdAttemptsCall(t *testing.T) {
	c, st := newTestClient(validQuizReply)
	text := strings.TrimSpace(strings.Repeat("word ", MinQuizWords))

	quiz, err := c.GenerateQuiz(context.Background(), text, MinQuizWords)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.calls != 1 {
		t.Errorf("expected exactly one remote call, got %d", st.calls)
	}
	if len(quiz.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(quiz.Questions))
	}
	if quiz.Questions[0].Type != "recall" {
		t.Errorf("expected first question type recall, got %q", quiz.Questions[0].Type)
	}
	if quiz.WordCount != MinQuizWords {
		t.Errorf("expected word count %d, got %d", MinQuizWords, quiz.WordCount)
	}
	if quiz.TextAnalyzed != text {
		t.Error("expected full text retained in result, not the truncated excerpt")
	}
}

func TestGenerateQuiz_WrongQuestionCount(t *testing.T) {
	c, _ := newTestClient(`{"questions": [{"question": "only one?", "type": "recall", "correctAnswer": "a", "explanation": "e"}]}`)
	_, err := c.GenerateQuiz(context.Background(), strings.Repeat("w ", 600), 600)
	if !errors.Is(err, ErrWrongShape) {
		t.Errorf("expected ErrWrongShape, got %v", err)
	}
}

func TestGenerateQuiz_ReplyWithoutJSON(t *testing.T) {
	c, _ := newTestClient("I'm sorry, I can't produce a quiz for this text.")
	_, err := c.GenerateQuiz(context.Background(), strings.Repeat("w ", 600), 600)
	if !errors.Is(err, ErrNoJSON) {
		t.Errorf("expected ErrNoJSON, got %v", err)
	}
}

func TestGenerateQuiz_StatsRecordedOnFailure(t *testing.T) {
	c, _ := newTestClient("no json here")
	_, err := c.GenerateQuiz(context.Background(), strings.Repeat("w ", 600), 600)
	if err == nil {
		t.Fatal("expected error")
	}
	if snap := c.Stats.Snapshot(); snap.Count != 1 {
		t.Errorf("expected failed call recorded in stats, got count %d", snap.Count)
	}
}

func TestEvaluateAnswer_ParsesEvaluation(t *testing.T) {
	c, _ := newTestClient(`Evaluation follows. {"isCorrect": true, "feedback": "Well understood.", "score": 92}`)
	eval, err := c.EvaluateAnswer(context.Background(), QuizQuestion{
		Question:      "What happened first?",
		CorrectAnswer: "The storm hit.",
	}, "A storm arrived at the start.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !eval.IsCorrect || eval.Score != 92 {
		t.Errorf("unexpected evaluation: %+v", eval)
	}
}

func TestEvaluateAnswer_EmptyAnswerRejected(t *testing.T) {
	c, st := newTestClient(`{"isCorrect": false, "feedback": "x", "score": 0}`)
	_, err := c.EvaluateAnswer(context.Background(), QuizQuestion{Question: "Q"}, "   ")
	if err == nil {
		t.Fatal("expected error for empty answer")
	}
	if st.calls != 0 {
		t.Errorf("expected no remote call, got %d", st.calls)
	}
}

func TestEvaluateAnswer_ScoreOutOfRange(t *testing.T) {
	c, _ := newTestClient(`{"isCorrect": true, "feedback": "x", "score": 250}`)
	_, err := c.EvaluateAnswer(context.Background(), QuizQuestion{Question: "Q"}, "answer")
	if !errors.Is(err, ErrWrongShape) {
		t.Errorf("expected ErrWrongShape, got %v", err)
	}
}

func TestAnalyzeSession_ParsesAnalysis(t *testing.T) {
	c, _ := newTestClient(`{"summary": "Solid session.", "strengths": ["pace"], "improvements": ["focus"], "nextGoal": "Try 1200 words."}`)
	analysis, err := c.AnalyzeSession(context.Background(), SessionStats{
		WordGoal:       1000,
		WordsRead:      900,
		TargetWPM:      300,
		ActualWPM:      280,
		TimeSpent:      193,
		CompletionRate: 90,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.Summary != "Solid session." {
		t.Errorf("unexpected summary %q", analysis.Summary)
	}
	if len(analysis.Strengths) != 1 || len(analysis.Improvements) != 1 {
		t.Errorf("unexpected analysis: %+v", analysis)
	}
}
