package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jfaulds/pacereader/internal/ai"
)

func (s *Server) handleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TextRead  string `json:"textRead"`
		WordCount int    `json:"wordCount"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if strings.TrimSpace(body.TextRead) == "" {
		respondError(w, "textRead is required", http.StatusBadRequest)
		return
	}

	quiz, err := s.quiz.GenerateQuiz(r.Context(), body.TextRead, body.WordCount)
	if err != nil {
		if errors.Is(err, ai.ErrTooShort) {
			respondError(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.log.Error("quiz generation failed", "error", err)
		respondError(w, "failed to generate quiz", http.StatusInternalServerError)
		return
	}

	respond(w, http.StatusOK, map[string]any{"quiz": quiz})
}

func (s *Server) handleEvaluateAnswer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Question   ai.QuizQuestion `json:"question"`
		UserAnswer string          `json:"userAnswer"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if strings.TrimSpace(body.Question.Question) == "" {
		respondError(w, "question is required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(body.UserAnswer) == "" {
		respondError(w, "userAnswer is required", http.StatusBadRequest)
		return
	}

	eval, err := s.quiz.EvaluateAnswer(r.Context(), body.Question, body.UserAnswer)
	if err != nil {
		s.log.Error("answer evaluation failed", "error", err)
		respondError(w, "failed to evaluate answer", http.StatusInternalServerError)
		return
	}

	respond(w, http.StatusOK, map[string]any{"evaluation": eval})
}

func (s *Server) handleAnalyzeSession(w http.ResponseWriter, r *http.Request) {
	var stats ai.SessionStats
	if !decodeBody(w, r, &stats) {
		return
	}
	if stats.WordGoal <= 0 {
		respondError(w, "wordGoal must be positive", http.StatusBadRequest)
		return
	}

	analysis, err := s.quiz.AnalyzeSession(r.Context(), stats)
	if err != nil {
		s.log.Error("session analysis failed", "error", err)
		respondError(w, "failed to analyze session", http.StatusInternalServerError)
		return
	}

	respond(w, http.StatusOK, map[string]any{"analysis": analysis})
}
