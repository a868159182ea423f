package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// MinQuizWords is the eligibility floor: shorter excerpts don't carry enough
// material for a meaningful comprehension check.
const MinQuizWords = 500

// maxExcerptChars bounds the prompt size regardless of how much was read.
const maxExcerptChars = 2000

// ErrTooShort is returned before any remote call when the excerpt is below
// the eligibility floor.
var ErrTooShort = fmt.Errorf("need at least %d words to generate a meaningful quiz", MinQuizWords)

// QuizQuestion is one generated comprehension question.
type QuizQuestion struct {
	Question      string `json:"question"`
	Type          string `json:"type"` // recall | understanding | application
	CorrectAnswer string `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
}

// QuizResult is a full generated quiz.
type QuizResult struct {
	Questions    []QuizQuestion `json:"questions"`
	TextAnalyzed string         `json:"textAnalyzed"`
	WordCount    int            `json:"wordCount"`
}

// Evaluation is the model's judgment of one free-text answer.
type Evaluation struct {
	IsCorrect bool    `json:"isCorrect"`
	Feedback  string  `json:"feedback"`
	Score     float64 `json:"score"` // 0-100
}

const quizPromptHeader = `You are a reading comprehension expert. Generate 3 diverse comprehension questions based on this text excerpt.`

const quizPromptRules = `Generate exactly 3 questions that test different comprehension levels:

1. RECALL question - Tests memory of specific facts/details
2. UNDERSTANDING question - Tests grasp of main ideas/themes
3. APPLICATION question - Tests ability to connect to broader concepts

For each question, provide:
- The question itself
- The correct answer (concise, 1-2 sentences)
- Brief explanation of why this answer is correct

Return ONLY a JSON object in this exact format:
{
  "questions": [
    {"question": "Question text here?", "type": "recall", "correctAnswer": "The answer here", "explanation": "Why this is correct"},
    {"question": "Question text here?", "type": "understanding", "correctAnswer": "The answer here", "explanation": "Why this is correct"},
    {"question": "Question text here?", "type": "application", "correctAnswer": "The answer here", "explanation": "Why this is correct"}
  ]
}

Keep questions clear, specific to the text, and appropriate for the reading level.`

// GenerateQuiz asks the model for 3 comprehension questions over an excerpt.
// The eligibility check happens before any network traffic.
func (c *Client) GenerateQuiz(ctx context.Context, textRead string, wordCount int) (*QuizResult, error) {
	if wordCount < MinQuizWords {
		return nil, ErrTooShort
	}

	excerpt := textRead
	if len(excerpt) > maxExcerptChars {
		excerpt = excerpt[:maxExcerptChars] + "..."
	}

	var sb strings.Builder
	sb.WriteString(quizPromptHeader)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "TEXT EXCERPT (%d words):\n%q\n\n", wordCount, excerpt)
	sb.WriteString(quizPromptRules)

	reply, err := c.generate(ctx, sb.String())
	if err != nil {
		return nil, fmt.Errorf("generate quiz: %w", err)
	}

	var parsed struct {
		Questions []QuizQuestion `json:"questions"`
	}
	if err := ExtractObject(reply, &parsed); err != nil {
		return nil, fmt.Errorf("generate quiz: %w", err)
	}
	if len(parsed.Questions) != 3 {
		return nil, fmt.Errorf("generate quiz: %w: got %d questions, want 3", ErrWrongShape, len(parsed.Questions))
	}

	return &QuizResult{
		Questions:    parsed.Questions,
		TextAnalyzed: textRead,
		WordCount:    wordCount,
	}, nil
}

// EvaluateAnswer scores a free-text answer against a question's canonical
// answer.
func (c *Client) EvaluateAnswer(ctx context.Context, question QuizQuestion, userAnswer string) (*Evaluation, error) {
	if strings.TrimSpace(userAnswer) == "" {
		return nil, errors.New("answer is empty")
	}

	var sb strings.Builder
	sb.WriteString("You are evaluating a reading comprehension answer.\n\n")
	fmt.Fprintf(&sb, "QUESTION: %s\n", question.Question)
	fmt.Fprintf(&sb, "CORRECT ANSWER: %s\n", question.CorrectAnswer)
	fmt.Fprintf(&sb, "USER'S ANSWER: %s\n\n", userAnswer)
	sb.WriteString(`Evaluate if the user's answer demonstrates understanding of the concept, even if wording differs from the correct answer.

Return ONLY a JSON object:
{
  "isCorrect": true or false,
  "feedback": "Brief explanation (1-2 sentences)",
  "score": 0 to 100 (percentage score based on accuracy)
}

Be fair but accurate in evaluation.`)

	reply, err := c.generate(ctx, sb.String())
	if err != nil {
		return nil, fmt.Errorf("evaluate answer: %w", err)
	}

	var eval Evaluation
	if err := ExtractObject(reply, &eval); err != nil {
		return nil, fmt.Errorf("evaluate answer: %w", err)
	}
	if eval.Score < 0 || eval.Score > 100 {
		return nil, fmt.Errorf("evaluate answer: %w: score %v out of range", ErrWrongShape, eval.Score)
	}
	return &eval, nil
}
