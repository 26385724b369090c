// internal/game/engine.go
//
// Session driver: plays a mode's levels in order.
// Responsibilities:
//   - Start a session on the first level of a mode.
//   - Check answers against the current puzzle and keep score.
//   - Advance to the next level once the round is won; finish on the Win level.
//
// Notes:
//   - Each session owns its random stream, seeded from Seed, so a session can
//     be replayed exactly.
//   - A Session is not safe for concurrent use; the store serializes access.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/robalobadob/indexcat/internal/level"
	"github.com/robalobadob/indexcat/internal/rng"
	"github.com/robalobadob/indexcat/internal/subscript"
	"github.com/robalobadob/indexcat/internal/words"
)

const (
	StatePlaying  = "playing"
	StateFinished = "finished"
)

var (
	// ErrFinished is returned for moves on a session past its Win level.
	ErrFinished = errors.New("game finished")
	// ErrNoLevels is returned when a session is started with an empty mode.
	ErrNoLevels = errors.New("game: mode has no levels")
)

// Session is one playthrough of a mode.
type Session struct {
	ID         string
	Mode       string
	Seed       int64
	StartedAt  time.Time
	FinishedAt time.Time
	Score      Round
	// Skips counts levels abandoned with Skip. A run with skips is not
	// leaderboard material.
	Skips int

	levels  []level.Level
	current int
	puzzle  level.Puzzle
	src     rng.Source
	bank    words.Bank
}

// Outcome reports how one answer was scored.
type Outcome struct {
	Correct  bool                `json:"correct"`
	Prompt   string              `json:"prompt"`
	Expected subscript.Subscript `json:"expected"`
	Selected []string            `json:"selected"`
	RoundWon bool                `json:"roundWon"`
	State    string              `json:"state"`
}

// New starts a session on the first level of levels, drawing from a stream
// seeded with seed. bank is only consulted by word-valued levels.
func New(mode string, levels []level.Level, seed int64, bank words.Bank) (*Session, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	s := &Session{
		ID:        randomID(),
		Mode:      mode,
		Seed:      seed,
		StartedAt: time.Now().UTC(),
		levels:    levels,
		src:       rng.New(seed),
		bank:      bank,
	}
	if err := s.enter(0); err != nil {
		return nil, err
	}
	return s, nil
}

// Answer scores sub against the current puzzle.
//
// A correct answer that pushes the round past WinThreshold moves the session
// to the next level. Either way a fresh puzzle is drawn.
func (s *Session) Answer(sub subscript.Subscript) (Outcome, error) {
	if s.Finished() {
		return Outcome{State: s.State()}, ErrFinished
	}
	p := s.puzzle
	selected, err := p.Answer()
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{
		Correct:  p.Accepts(sub),
		Prompt:   p.Prompt(),
		Expected: p.Target,
		Selected: selected,
	}
	if out.Correct {
		s.Score.Correct()
	} else {
		s.Score.Wrong()
	}

	if s.Score.CheckRound() {
		err = s.enter(s.current + 1)
		out.RoundWon = err == nil
	} else {
		err = s.draw()
	}
	out.State = s.State()
	return out, err
}

// Skip abandons the current level without touching the score and moves on.
func (s *Session) Skip() error {
	if s.Finished() {
		return ErrFinished
	}
	if err := s.enter(s.current + 1); err != nil {
		return err
	}
	s.Skips++
	return nil
}

// Level returns the level being played.
func (s *Session) Level() level.Level { return s.levels[s.current] }

// LevelIndex returns the 0-based position of the current level.
func (s *Session) LevelIndex() int { return s.current }

// LevelCount returns the number of levels in the mode, Win level included.
func (s *Session) LevelCount() int { return len(s.levels) }

// Puzzle returns the puzzle awaiting an answer.
func (s *Session) Puzzle() level.Puzzle { return s.puzzle }

// Finished reports whether the session reached its Win level.
func (s *Session) Finished() bool { return !s.FinishedAt.IsZero() }

// Completed reports whether the session was played to the end without
// skipping a level.
func (s *Session) Completed() bool { return s.Finished() && s.Skips == 0 }

// State reports a coarse string representation of the session state.
func (s *Session) State() string {
	if s.Finished() {
		return StateFinished
	}
	return StatePlaying
}

// Elapsed is the play time so far, or the total once finished.
func (s *Session) Elapsed() time.Duration {
	if s.Finished() {
		return s.FinishedAt.Sub(s.StartedAt)
	}
	return time.Since(s.StartedAt)
}

// enter moves to level i and starts a new round there. Running off the end
// of a mode that lacks a Win level finishes the session on its last level.
// The first puzzle of level i is drawn before anything changes, so a failed
// draw leaves the session on its current level and puzzle.
func (s *Session) enter(i int) error {
	if i >= len(s.levels) {
		s.FinishedAt = time.Now().UTC()
		return nil
	}
	l := s.levels[i]
	p, err := l.Generate(s.src, s.bank)
	if err != nil {
		return err
	}
	s.current, s.puzzle = i, p
	s.Score.NewRound(l.Name())
	if l.IsWin() {
		s.FinishedAt = time.Now().UTC()
	}
	return nil
}

// draw replaces the current puzzle with a fresh instance of the level.
func (s *Session) draw() error {
	p, err := s.Level().Generate(s.src, s.bank)
	if err != nil {
		return err
	}
	s.puzzle = p
	return nil
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
