package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jfaulds/pacereader/internal/ai"
	"github.com/jfaulds/pacereader/internal/config"
	"github.com/jfaulds/pacereader/internal/segment"
	"github.com/jfaulds/pacereader/internal/session"
)

// QuizService is the AI surface the handlers call. *ai.Client satisfies it;
// tests substitute a fake.
type QuizService interface {
	GenerateQuiz(ctx context.Context, textRead string, wordCount int) (*ai.QuizResult, error)
	EvaluateAnswer(ctx context.Context, question ai.QuizQuestion, userAnswer string) (*ai.Evaluation, error)
	AnalyzeSession(ctx context.Context, stats ai.SessionStats) (*ai.Analysis, error)
}

// Server is the HTTP API server for pacereader.
type Server struct {
	router chi.Router
	store  *session.Store
	seg    *segment.Segmenter
	quiz   QuizService
	gemini *ai.Client
	clock  session.Clock
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server. gemini may equal quiz;
// it is kept separately for the latency-stats endpoint and may be nil in
// tests.
func NewServer(store *session.Store, seg *segment.Segmenter, quiz QuizService, gemini *ai.Client, clock session.Clock, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		store:  store,
		seg:    seg,
		quiz:   quiz,
		gemini: gemini,
		clock:  clock,
		log:    log,
		cfg:    cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/upload", s.handleUpload)

		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Get("/words", s.handleGetWords)
			r.Post("/start", s.handleStart)
			r.Post("/pause", s.handlePause)
			r.Post("/resume", s.handleResume)
			r.Post("/reset", s.handleReset)
			r.Post("/step", s.handleStep)
			r.Post("/jump", s.handleJump)
		})

		r.Route("/ai", func(r chi.Router) {
			r.Post("/generate-quiz", s.handleGenerateQuiz)
			r.Post("/evaluate-answer", s.handleEvaluateAnswer)
			r.Post("/analyze-session", s.handleAnalyzeSession)
		})

		r.Get("/stats/llm", s.handleLLMStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// respond writes a success body. The payload's keys are merged alongside
// "success": true.
func respond(w http.ResponseWriter, code int, payload map[string]any) {
	body := map[string]any{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]any{"success": false, "error": msg})
}

// decodeBody reads a small JSON request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}
