package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jfaulds/pacereader/internal/session"
)

// lookupSession resolves the URL's session ID or writes a 404.
func (s *Server) lookupSession(w http.ResponseWriter, r *http.Request) (*session.Session, *session.Player, bool) {
	id := chi.URLParam(r, "sessionID")
	sess, player := s.store.Get(id)
	if sess == nil {
		respondError(w, "session not found", http.StatusNotFound)
		return nil, nil, false
	}
	return sess, player, true
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, _, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusOK, map[string]any{"session": sess.Snapshot()})
}

// handleGetWords serves the word list a page at a time so large books never
// travel in one response.
func (s *Server) handleGetWords(w http.ResponseWriter, r *http.Request) {
	sess, _, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	page := 0
	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			respondError(w, "page must be a non-negative integer", http.StatusBadRequest)
			return
		}
		page = n
	}

	words := sess.Document.Words
	size := s.cfg.PreviewPageSize
	totalPages := (len(words) + size - 1) / size

	start := page * size
	if start > len(words) {
		start = len(words)
	}
	end := start + size
	if end > len(words) {
		end = len(words)
	}

	respond(w, http.StatusOK, map[string]any{
		"page":       page,
		"pageSize":   size,
		"totalWords": len(words),
		"totalPages": totalPages,
		"startIndex": start,
		"words":      words[start:end],
	})
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	sess, player, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	var body struct {
		WordGoal       int `json:"wordGoal"`
		TargetWPM      int `json:"targetWPM"`
		StartWordIndex int `json:"startWordIndex"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	if err := sess.Start(body.WordGoal, body.TargetWPM, body.StartWordIndex); err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}
	player.Start()

	respond(w, http.StatusOK, map[string]any{"session": sess.Snapshot()})
}

func (s *Server) handlePause(w http.ResponseWriter, r *http.Request) {
	sess, player, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	player.Stop()
	sess.Pause()
	respond(w, http.StatusOK, map[string]any{"session": sess.Snapshot()})
}

func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	sess, player, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	if err := sess.Resume(); err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}
	player.Start()
	respond(w, http.StatusOK, map[string]any{"session": sess.Snapshot()})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess, player, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	player.Stop()
	sess.Reset()
	respond(w, http.StatusOK, map[string]any{"session": sess.Snapshot()})
}

// handleStep nudges the position by one word. The playback timer's phase is
// left alone.
func (s *Server) handleStep(w http.ResponseWriter, r *http.Request) {
	sess, _, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	var body struct {
		Delta int `json:"delta"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Delta != 1 && body.Delta != -1 {
		respondError(w, "delta must be 1 or -1", http.StatusBadRequest)
		return
	}

	sess.Step(body.Delta)
	respond(w, http.StatusOK, map[string]any{"session": sess.Snapshot()})
}

func (s *Server) handleJump(w http.ResponseWriter, r *http.Request) {
	sess, _, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	var body struct {
		SectionIndex int `json:"sectionIndex"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	if err := sess.JumpToSection(body.SectionIndex); err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}
	respond(w, http.StatusOK, map[string]any{"session": sess.Snapshot()})
}
