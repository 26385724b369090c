// internal/auth/auth.go
//
// Optional player accounts.
// Responsibilities:
//   - Users table access (create, find, bump run stats).
//   - bcrypt password hashing and verification.
//   - HS256 JWTs carrying id/username, delivered as a cookie or bearer token.
//   - A long-lived anonymous cookie so guest runs can be claimed later.
//
// Guests never need an account; accounts only attach finished runs to a name.

package auth

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = errors.New("username taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidUsername    = errors.New("username must be 3–24 chars: letters, numbers, underscore")
	ErrInvalidPassword    = errors.New("password must be 8–100 chars")
	ErrUserNotFound       = errors.New("user not found")
)

// User matches the users table shape.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	RunsFinished int       `json:"runsFinished"`
	TotalCorrect int       `json:"totalCorrect"`
	TotalWrong   int       `json:"totalWrong"`
}

// Config holds token and cookie settings.
type Config struct {
	Secret     string
	ExpiresIn  time.Duration
	CookieName string
	AnonCookie string
	Secure     bool // production: Secure + SameSite=None cookies
}

// Service owns user records and tokens.
type Service struct {
	db  *sql.DB
	cfg Config
}

// NewService builds a Service. Empty cookie names get defaults.
func NewService(db *sql.DB, cfg Config) *Service {
	if cfg.CookieName == "" {
		cfg.CookieName = "indexcat_token"
	}
	if cfg.AnonCookie == "" {
		cfg.AnonCookie = "indexcat_anon"
	}
	if cfg.ExpiresIn <= 0 {
		cfg.ExpiresIn = 14 * 24 * time.Hour
	}
	return &Service{db: db, cfg: cfg}
}

// Signup validates input, checks uniqueness, hashes password, and inserts a new user.
func (s *Service) Signup(ctx context.Context, username, pw string) (*User, error) {
	username = normalizeUsername(username)
	if err := validateSignup(username, pw); err != nil {
		return nil, err
	}
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM users WHERE lower(username)=lower(?)`, username).Scan(&exists)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &User{
		ID:           genID(),
		Username:     username,
		PasswordHash: string(h),
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, created_at) VALUES (?,?,?,?)`,
		u.ID, u.Username, u.PasswordHash, u.CreatedAt.Format(time.RFC3339)); err != nil {
		return nil, err
	}
	return u, nil
}

// Login checks a username/password pair.
func (s *Service) Login(ctx context.Context, username, pw string) (*User, error) {
	u, err := s.findBy(ctx, `lower(username)=lower(?)`, normalizeUsername(username))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(pw)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// FindByID loads a user row.
func (s *Service) FindByID(ctx context.Context, id string) (*User, error) {
	return s.findBy(ctx, `id=?`, id)
}

func (s *Service) findBy(ctx context.Context, where string, arg any) (*User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at, runs_finished, total_correct, total_wrong
		 FROM users WHERE `+where, arg)
	var u User
	var created string
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &created, &u.RunsFinished, &u.TotalCorrect, &u.TotalWrong); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	u.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return &u, nil
}

// RecordRun adds a finished run to the user's totals.
func (s *Service) RecordRun(ctx context.Context, userID string, correct, wrong int) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET runs_finished = runs_finished + 1,
		                  total_correct = total_correct + ?,
		                  total_wrong   = total_wrong + ?
		 WHERE id=?`, correct, wrong, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("record run: %w", ErrUserNotFound)
	}
	return nil
}

// normalizeUsername trims whitespace.
func normalizeUsername(u string) string {
	return strings.TrimSpace(u)
}

// validateSignup enforces basic username/password rules.
func validateSignup(u, p string) error {
	if len(u) < 3 || len(u) > 24 {
		return ErrInvalidUsername
	}
	for _, r := range u {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return ErrInvalidUsername
		}
	}
	if len(p) < 8 || len(p) > 100 {
		return ErrInvalidPassword
	}
	return nil
}

// genID creates a 22‑char URL‑safe, crypto‑random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
