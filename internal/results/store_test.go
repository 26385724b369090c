package results

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/indexcat/internal/db"
)

func newStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()
	conn, err := db.OpenAndMigrate(context.Background(), db.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	_, err = conn.Exec(`INSERT INTO users (id, username, password_hash, created_at) VALUES ('u1', 'whiskers', 'x', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)
	return NewStore(conn), conn
}

func TestInsert_IgnoresDuplicatesAndNeedsOwner(t *testing.T) {
	ctx := context.Background()
	s, conn := newStore(t)

	r := Result{SessionID: "s1", AnonymousID: "anon", Mode: "lists", Correct: 24, Wrong: 2, ElapsedMs: 1000, Seed: 7}
	require.NoError(t, s.Insert(ctx, r))
	require.NoError(t, s.Insert(ctx, r))

	var n int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM results`).Scan(&n))
	assert.Equal(t, 1, n)

	assert.ErrorIs(t, s.Insert(ctx, Result{SessionID: "s2", Mode: "lists"}), ErrNoOwner)
}

func TestLeaderboard_Ordering(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	require.NoError(t, s.Insert(ctx, Result{SessionID: "a", AnonymousID: "g1", Mode: "lists", Correct: 26, Wrong: 2, ElapsedMs: 500}))
	require.NoError(t, s.Insert(ctx, Result{SessionID: "b", UserID: "u1", Mode: "lists", Correct: 24, Wrong: 0, ElapsedMs: 9000}))
	require.NoError(t, s.Insert(ctx, Result{SessionID: "c", AnonymousID: "g2", Mode: "lists", Correct: 24, Wrong: 0, ElapsedMs: 4000}))
	require.NoError(t, s.Insert(ctx, Result{SessionID: "d", AnonymousID: "g3", Mode: "strings", Correct: 32, Wrong: 0, ElapsedMs: 1}))

	rows, err := s.Leaderboard(ctx, "lists", 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, LBRow{Player: "guest", Correct: 24, Wrong: 0, ElapsedMs: 4000}, rows[0])
	assert.Equal(t, "whiskers", rows[1].Player)
	assert.Equal(t, 2, rows[2].Wrong)

	rows, err = s.Leaderboard(ctx, "lists", 1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, err = s.Leaderboard(ctx, "tuples", 5)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestClaimAnonymous(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	require.NoError(t, s.Insert(ctx, Result{SessionID: "a", AnonymousID: "g1", Mode: "lists", Correct: 24, Seed: 42}))
	require.NoError(t, s.Insert(ctx, Result{SessionID: "b", AnonymousID: "g2", Mode: "lists", Correct: 24}))

	n, err := s.ClaimAnonymous(ctx, "g1", "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	mine, err := s.ForUser(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "a", mine[0].SessionID)
	assert.Equal(t, int64(42), mine[0].Seed)
	assert.False(t, mine[0].CreatedAt.IsZero())

	n, err = s.ClaimAnonymous(ctx, "", "u1")
	require.NoError(t, err)
	assert.Zero(t, n)
}
