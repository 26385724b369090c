// Package config reads server settings from the environment.
//
// A .env file in the working directory is loaded first when present, then
// variables are parsed into Config. Real environment variables win over .env.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config controls the game server.
type Config struct {
	Port      string `env:"PORT"       envDefault:"5175"`
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	DatabasePath string `env:"DATABASE_PATH" envDefault:"./data/indexcat.db"`
	WordsFile    string `env:"WORDS_FILE"`

	// DefaultMode is used when a new game names no mode.
	DefaultMode string `env:"DEFAULT_MODE" envDefault:"lists"`
	// GameSeed, when non-zero, seeds every session identically (demos, tests).
	GameSeed int64 `env:"GAME_SEED" envDefault:"0"`

	JWTSecret      string `env:"JWT_SECRET"       envDefault:"dev_secret_change_me"`
	JWTExpiresDays int    `env:"JWT_EXPIRES_DAYS" envDefault:"14"`
	CookieName     string `env:"COOKIE_NAME"      envDefault:"indexcat_token"`

	// Sessions live in memory; the sweeper drops idle ones and, after a
	// short grace period, finished ones.
	SessionIdleTTL     time.Duration `env:"SESSION_IDLE_TTL"     envDefault:"30m"`
	SessionFinishedTTL time.Duration `env:"SESSION_FINISHED_TTL" envDefault:"2m"`
	SessionSweepEvery  time.Duration `env:"SESSION_SWEEP_EVERY"  envDefault:"1m"`

	ClientOrigin   string        `env:"CLIENT_ORIGIN"   envDefault:"http://localhost:5173"`
	Environment    string        `env:"NODE_ENV"        envDefault:"development"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// Load reads .env (if any) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.JWTExpiresDays <= 0 {
		cfg.JWTExpiresDays = 14
	}
	return cfg, nil
}

// Production reports whether cookies must be Secure.
func (c Config) Production() bool { return c.Environment == "production" }

// TokenTTL is the JWT lifetime.
func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpiresDays) * 24 * time.Hour
}

// Addr is the listen address.
func (c Config) Addr() string { return ":" + c.Port }
