package api

import (
	"net/http"
)

func (s *Server) handleLLMStats(w http.ResponseWriter, r *http.Request) {
	if s.gemini == nil || s.gemini.Stats == nil {
		respondError(w, "llm stats unavailable", http.StatusServiceUnavailable)
		return
	}

	respond(w, http.StatusOK, map[string]any{
		"model": s.gemini.Model(),
		"stats": s.gemini.Stats.Snapshot(),
	})
}
