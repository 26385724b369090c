// internal/httpserver/routes_game.go
//
// HTTP routes for playing a mode:
//   - POST /game/new    → start a session on the first level of a mode
//   - GET  /game/{id}   → current level, puzzle and score
//   - POST /game/answer → answer the current puzzle
//   - POST /game/skip   → give up on the current level
//
// Sessions live in the in-memory store. A session finished by answering,
// with no level skipped along the way, is recorded in the results table.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/indexcat/internal/game"
	"github.com/robalobadob/indexcat/internal/level"
	"github.com/robalobadob/indexcat/internal/results"
	"github.com/robalobadob/indexcat/internal/rng"
	"github.com/robalobadob/indexcat/internal/store"
	"github.com/robalobadob/indexcat/internal/subscript"
)

// mountGame registers the /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Post("/answer", s.handleAnswer)
		r.Post("/skip", s.handleSkip)
		r.Get("/{id}", s.handleGetGame)
	})
}

// ------------------------------- views -------------------------------------

type levelView struct {
	Name  string     `json:"name"`
	Kind  level.Kind `json:"kind"`
	Index int        `json:"index"`
	Count int        `json:"count"`
}

// puzzleView never includes the target.
type puzzleView struct {
	Display  string   `json:"display"`
	Prompt   string   `json:"prompt"`
	Elements []string `json:"elements"`
	Length   int      `json:"length"`
	Wrap     string   `json:"wrap"`
}

type gameView struct {
	GameID string     `json:"gameId"`
	Mode   string     `json:"mode"`
	Level  levelView  `json:"level"`
	Puzzle puzzleView `json:"puzzle"`
	Round  game.Round `json:"round"`
	Skips  int        `json:"skips"`
	State  string     `json:"state"`
}

func viewOf(g *game.Session) gameView {
	l, p := g.Level(), g.Puzzle()
	return gameView{
		GameID: g.ID,
		Mode:   g.Mode,
		Level:  levelView{Name: l.Name(), Kind: l.Kind(), Index: g.LevelIndex(), Count: g.LevelCount()},
		Puzzle: puzzleView{
			Display:  p.Display(),
			Prompt:   p.Prompt(),
			Elements: p.Elements(),
			Length:   p.Length,
			Wrap:     p.Wrap,
		},
		Round: g.Score,
		Skips: g.Skips,
		State: g.State(),
	}
}

// ------------------------------ handlers -----------------------------------

// newGameReq is the payload for POST /game/new. An empty body is allowed.
type newGameReq struct {
	Mode string `json:"mode"`
}

// handleNewGame resolves the mode once (body, then ?mode=, then the
// default), starts a session and stores it.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	raw := req.Mode
	if raw == "" {
		raw = r.URL.Query().Get("mode")
	}
	mode := level.ResolveMode(raw, s.opts.DefaultMode)

	levels, err := s.opts.Catalog.Levels(mode)
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown_mode")
		return
	}

	seed := s.opts.Seed
	if seed == 0 {
		if seed, err = rng.NewSeed(); err != nil {
			log.Error().Err(err).Msg("new seed")
			writeError(w, http.StatusInternalServerError, "seed_failed")
			return
		}
	}

	g, err := game.New(mode, levels, seed, s.opts.Bank)
	if err != nil {
		log.Error().Err(err).Str("mode", mode).Msg("start game")
		writeError(w, http.StatusInternalServerError, "start_failed")
		return
	}
	if err := s.opts.Store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	s.owner(w, r) // pin the guest cookie before play starts

	log.Info().Str("gameId", g.ID).Str("mode", mode).Int64("seed", seed).Msg("game started")
	writeJSON(w, http.StatusOK, viewOf(g))
}

// handleGetGame returns the session view.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	var view gameView
	err := s.opts.Store.Update(r.Context(), chi.URLParam(r, "id"), func(g *game.Session) error {
		view = viewOf(g)
		return nil
	})
	if err != nil {
		s.writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// answerReq carries the player's subscript either as text ("[1:3]") or as
// the structured JSON form.
type answerReq struct {
	GameID    string               `json:"gameId"`
	Answer    string               `json:"answer"`
	Subscript *subscript.Subscript `json:"subscript"`
}

type answerRes struct {
	Outcome game.Outcome `json:"outcome"`
	Game    gameView     `json:"game"`
}

// handleAnswer scores one answer. On the answer that finishes the mode the
// run is recorded for the leaderboard (best effort).
func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	var sub subscript.Subscript
	switch {
	case req.Subscript != nil:
		sub = *req.Subscript
	case req.Answer != "":
		var err error
		if sub, err = subscript.Parse(req.Answer); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	default:
		writeError(w, http.StatusBadRequest, "missing_answer")
		return
	}

	var (
		res      answerRes
		finished *results.Result
	)
	err := s.opts.Store.Update(r.Context(), req.GameID, func(g *game.Session) error {
		before := g.LevelIndex()
		out, err := g.Answer(sub)
		if err != nil {
			return err
		}
		res = answerRes{Outcome: out, Game: viewOf(g)}
		if out.RoundWon {
			log.Debug().Str("gameId", g.ID).Int("from", before).Int("to", g.LevelIndex()).Msg("level won")
		}
		if out.RoundWon && g.Finished() && !g.Completed() {
			log.Info().Str("gameId", g.ID).Int("skips", g.Skips).Msg("game finished with skips, not recorded")
		}
		if out.RoundWon && g.Completed() {
			finished = &results.Result{
				SessionID: g.ID,
				Mode:      g.Mode,
				Correct:   g.Score.OverallCorrect,
				Wrong:     g.Score.OverallWrong,
				ElapsedMs: g.Elapsed().Milliseconds(),
				Seed:      g.Seed,
			}
		}
		return nil
	})
	if err != nil {
		s.writeGameError(w, err)
		return
	}
	if finished != nil {
		s.recordRun(w, r, *finished)
	}
	writeJSON(w, http.StatusOK, res)
}

// skipReq is the payload for POST /game/skip.
type skipReq struct {
	GameID string `json:"gameId"`
}

// handleSkip abandons the current level. A run with any skip is never recorded.
func (s *Server) handleSkip(w http.ResponseWriter, r *http.Request) {
	var req skipReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	var view gameView
	err := s.opts.Store.Update(r.Context(), req.GameID, func(g *game.Session) error {
		if err := g.Skip(); err != nil {
			return err
		}
		view = viewOf(g)
		return nil
	})
	if err != nil {
		s.writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// recordRun stores a finished run and bumps the player's totals.
// Failures are logged, never surfaced: the player already won.
func (s *Server) recordRun(w http.ResponseWriter, r *http.Request, res results.Result) {
	res.UserID, res.AnonymousID = s.owner(w, r)
	if err := s.opts.Results.Insert(r.Context(), res); err != nil {
		log.Warn().Err(err).Str("gameId", res.SessionID).Msg("record result")
		return
	}
	if res.UserID != "" {
		if err := s.opts.Auth.RecordRun(r.Context(), res.UserID, res.Correct, res.Wrong); err != nil {
			log.Warn().Err(err).Str("user", res.UserID).Msg("bump stats")
		}
	}
	log.Info().Str("gameId", res.SessionID).Str("mode", res.Mode).
		Int("correct", res.Correct).Int("wrong", res.Wrong).Msg("game finished")
}

// writeGameError maps session errors to status codes.
func (s *Server) writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, game.ErrFinished):
		writeError(w, http.StatusConflict, "game_finished")
	default:
		log.Error().Err(err).Msg("game update")
		writeError(w, http.StatusInternalServerError, "update_failed")
	}
}
