// internal/httpserver/server.go
//
// HTTP server wiring for the Index the Cat backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/modes".
//   - Game endpoints (optional auth): POST /game/new, GET /game/{id},
//     POST /game/answer, POST /game/skip.
//   - Results: GET /results/leaderboard (public), GET /results/mine (auth).
//   - Auth + profile endpoints: /auth/*, /stats/me.
//
// Notes:
//   - CORS is origin‑aware and credentials‑enabled (so cookies work).
//   - Optional auth decorates requests with user context when a valid token is present;
//     routes can still run for guests, who are tracked by an anonymous cookie.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/robalobadob/indexcat/internal/auth"
	"github.com/robalobadob/indexcat/internal/level"
	"github.com/robalobadob/indexcat/internal/results"
	"github.com/robalobadob/indexcat/internal/store"
	"github.com/robalobadob/indexcat/internal/words"
)

// Options carries the server's collaborators and settings.
type Options struct {
	Catalog *level.Catalog
	Bank    words.Bank
	Store   store.Store
	Results *results.Store
	Auth    *auth.Service

	// DefaultMode is used when a new game names no mode.
	DefaultMode string
	// Seed, when non-zero, seeds every new session with the same value.
	Seed int64

	ClientOrigin   string
	RequestTimeout time.Duration
}

// Server bundles router and collaborators.
type Server struct {
	r    *chi.Mux
	opts Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	if opts.DefaultMode == "" {
		opts.DefaultMode = level.DefaultMode
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	s := &Server{r: chi.NewRouter(), opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                    // add X-Request-ID
	s.r.Use(chimw.RealIP)                       // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                          // zerolog access log
	s.r.Use(chimw.Recoverer)                    // recover from panics
	s.r.Use(chimw.Timeout(opts.RequestTimeout)) // bound handler time
	s.r.Use(jsonContentType)                    // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))            // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "indexcat",
			"endpoints": []string{"/health", "/modes", "POST /game/new", "POST /game/answer", "/results/leaderboard", "/auth/*"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		counts := map[int]int{}
		for _, n := range s.opts.Bank.Lengths() {
			counts[n] = len(s.opts.Bank.OfLength(n))
		}
		writeJSON(w, http.StatusOK, map[string]any{"total": s.opts.Bank.Size(), "byLength": counts})
	})

	s.r.Get("/modes", s.handleModes)

	// Game + results endpoints: optional auth, guests can play
	s.r.Group(func(r chi.Router) {
		r.Use(s.withOptionalAuth())
		s.mountGame(r)
		s.mountResults(r)
	})

	// Auth + profile (signup/login public, the rest gated)
	s.mountAuthRoutes()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ServeHTTP makes Server an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.r.ServeHTTP(w, r) }

// ------------------------------- modes -------------------------------------

type modeLevel struct {
	Name string     `json:"name"`
	Kind level.Kind `json:"kind"`
}

type modeView struct {
	Mode    string      `json:"mode"`
	Default bool        `json:"default"`
	Levels  []modeLevel `json:"levels"`
}

// handleModes lists the catalog in play order.
func (s *Server) handleModes(w http.ResponseWriter, r *http.Request) {
	out := []modeView{}
	for _, mode := range s.opts.Catalog.Modes() {
		levels, err := s.opts.Catalog.Levels(mode)
		if err != nil {
			continue
		}
		mv := modeView{Mode: mode, Default: mode == s.opts.DefaultMode}
		for _, l := range levels {
			mv.Levels = append(mv.Levels, modeLevel{Name: l.Name(), Kind: l.Kind()})
		}
		out = append(out, mv)
	}
	writeJSON(w, http.StatusOK, out)
}

// ------------------------------ helpers ------------------------------------

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes {"error": msg}.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
