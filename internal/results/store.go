// Package results records finished runs and serves the per-mode leaderboard.
//
// Only completed sessions are written. Nothing here can resume a session.
package results

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// DefaultLimit caps leaderboard and history queries when no limit is given.
const DefaultLimit = 20

// ErrNoOwner is returned when a result has neither a user nor an anonymous ID.
var ErrNoOwner = errors.New("results: result has no owner")

// Result is one finished run.
type Result struct {
	SessionID   string    `json:"sessionId"`
	UserID      string    `json:"userId,omitempty"`
	AnonymousID string    `json:"-"`
	Mode        string    `json:"mode"`
	Correct     int       `json:"correct"`
	Wrong       int       `json:"wrong"`
	ElapsedMs   int64     `json:"elapsedMs"`
	Seed        int64     `json:"seed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LBRow is one leaderboard line.
type LBRow struct {
	Player    string `json:"player"`
	Correct   int    `json:"correct"`
	Wrong     int    `json:"wrong"`
	ElapsedMs int64  `json:"elapsedMs"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Insert records r. A session already recorded is ignored.
func (s *Store) Insert(ctx context.Context, r Result) error {
	if r.UserID == "" && r.AnonymousID == "" {
		return ErrNoOwner
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO results(session_id, user_id, anonymous_id, mode, correct, wrong, elapsed_ms, seed)
		 VALUES(?,?,?,?,?,?,?,?)`,
		r.SessionID, nullable(r.UserID), nullable(r.AnonymousID), r.Mode, r.Correct, r.Wrong, r.ElapsedMs, r.Seed,
	)
	return err
}

// Leaderboard returns the best runs of a mode: fewest wrong answers, then
// fastest, then earliest. Guests show up as "guest".
func (s *Store) Leaderboard(ctx context.Context, mode string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT COALESCE(u.username, 'guest'), r.correct, r.wrong, r.elapsed_ms
		 FROM results r LEFT JOIN users u ON u.id = r.user_id
		 WHERE r.mode=?
		 ORDER BY r.wrong ASC, r.elapsed_ms ASC, r.created_at ASC
		 LIMIT ?`, mode, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []LBRow{}
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.Player, &r.Correct, &r.Wrong, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ForUser returns a user's most recent runs.
func (s *Store) ForUser(ctx context.Context, userID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, COALESCE(user_id,''), mode, correct, wrong, elapsed_ms, seed, created_at
		 FROM results WHERE user_id=?
		 ORDER BY created_at DESC LIMIT ?`, userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Result{}
	for rows.Next() {
		var r Result
		var created string
		if err := rows.Scan(&r.SessionID, &r.UserID, &r.Mode, &r.Correct, &r.Wrong, &r.ElapsedMs, &r.Seed, &created); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		out = append(out, r)
	}
	return out, rows.Err()
}

// ClaimAnonymous moves a guest's runs to a user account after login.
func (s *Store) ClaimAnonymous(ctx context.Context, anonID, userID string) (int64, error) {
	if anonID == "" || userID == "" {
		return 0, nil
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE results SET user_id=?, anonymous_id=NULL WHERE anonymous_id=?`, userID, anonID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
