package store

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// SweepConfig controls Sweep.
type SweepConfig struct {
	Every       time.Duration // tick interval
	IdleTTL     time.Duration // drop sessions untouched for this long
	FinishedTTL time.Duration // keep finished sessions viewable this long
}

// Sweep evicts stale sessions from st on every tick until ctx is done.
func Sweep(ctx context.Context, st Store, cfg SweepConfig) {
	if cfg.Every <= 0 {
		cfg.Every = time.Minute
	}
	t := time.NewTicker(cfg.Every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := st.Evict(ctx, now.Add(-cfg.IdleTTL), now.Add(-cfg.FinishedTTL)); n > 0 {
				log.Debug().Int("evicted", n).Int("live", st.Len()).Msg("session sweep")
			}
		}
	}
}
