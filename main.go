package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/indexcat/internal/auth"
	"github.com/robalobadob/indexcat/internal/config"
	"github.com/robalobadob/indexcat/internal/db"
	"github.com/robalobadob/indexcat/internal/httpserver"
	"github.com/robalobadob/indexcat/internal/level"
	"github.com/robalobadob/indexcat/internal/results"
	"github.com/robalobadob/indexcat/internal/store"
	"github.com/robalobadob/indexcat/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	setupLogging(cfg)

	bank, err := words.Load(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	catalog := level.DefaultCatalog()
	if err := catalog.Validate(bank); err != nil {
		log.Fatal().Err(err).Msg("word list cannot serve every level")
	}
	if _, err := catalog.Levels(cfg.DefaultMode); err != nil {
		log.Fatal().Err(err).Str("mode", cfg.DefaultMode).Msg("bad DEFAULT_MODE")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	conn, err := db.OpenAndMigrate(ctx, cfg.DatabasePath)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("open database")
	}
	defer conn.Close()

	sessions := store.NewMemoryStore()
	go store.Sweep(context.Background(), sessions, store.SweepConfig{
		Every:       cfg.SessionSweepEvery,
		IdleTTL:     cfg.SessionIdleTTL,
		FinishedTTL: cfg.SessionFinishedTTL,
	})

	srv := httpserver.New(httpserver.Options{
		Catalog: catalog,
		Bank:    bank,
		Store:   sessions,
		Results: results.NewStore(conn),
		Auth: auth.NewService(conn, auth.Config{
			Secret:     cfg.JWTSecret,
			ExpiresIn:  cfg.TokenTTL(),
			CookieName: cfg.CookieName,
			Secure:     cfg.Production(),
		}),
		DefaultMode:    cfg.DefaultMode,
		Seed:           cfg.GameSeed,
		ClientOrigin:   cfg.ClientOrigin,
		RequestTimeout: cfg.RequestTimeout,
	})

	log.Info().
		Str("port", cfg.Port).
		Int("words", bank.Size()).
		Strs("modes", catalog.Modes()).
		Msg("starting indexcat")
	if err := srv.Start(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// setupLogging applies LOG_LEVEL and LOG_FORMAT to the global logger.
func setupLogging(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}
