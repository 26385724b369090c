// internal/httpserver/routes_results.go
//
// Finished-run queries:
//   - GET /results/leaderboard?mode=&limit= → best runs of a mode
//   - GET /results/mine?limit=              → the caller's recent runs (gated)

package httpserver

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/indexcat/internal/auth"
	"github.com/robalobadob/indexcat/internal/level"
	"github.com/robalobadob/indexcat/internal/results"
)

// maxLimit bounds the ?limit= query parameter.
const maxLimit = 100

func (s *Server) mountResults(r chi.Router) {
	r.Route("/results", func(r chi.Router) {
		r.Get("/leaderboard", s.handleLeaderboard)
		r.With(s.requireAuth()).Get("/mine", s.handleMyResults)
	})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	mode := level.ResolveMode(r.URL.Query().Get("mode"), s.opts.DefaultMode)
	if _, err := s.opts.Catalog.Levels(mode); err != nil {
		writeError(w, http.StatusNotFound, "unknown_mode")
		return
	}
	rows, err := s.opts.Results.Leaderboard(r.Context(), mode, limitParam(r))
	if err != nil {
		log.Error().Err(err).Str("mode", mode).Msg("leaderboard")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"mode": mode, "rows": rows})
}

func (s *Server) handleMyResults(w http.ResponseWriter, r *http.Request) {
	me, _ := auth.UserFrom(r.Context())
	out, err := s.opts.Results.ForUser(r.Context(), me.ID, limitParam(r))
	if err != nil {
		log.Error().Err(err).Str("user", me.ID).Msg("my results")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// limitParam reads ?limit=, falling back to results.DefaultLimit.
func limitParam(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || n <= 0 {
		return results.DefaultLimit
	}
	if n > maxLimit {
		return maxLimit
	}
	return n
}
