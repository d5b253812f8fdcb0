package refresher

import (
	"context"
	"log/slog"
	"time"

	"github.com/bitfolio/bitfolio/core"
)

const defaultInterval = 30 * time.Second

type Config struct {
	Interval time.Duration
}

func New(session core.Session, logger *slog.Logger, cfg Config) *Refresher {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}

	return &Refresher{
		session:  session,
		logger:   logger.With("worker", "refresher"),
		interval: cfg.Interval,
	}
}

// Refresher periodically re-fetches balances, assets and history for the
// connected wallet so cached views stay warm.
type Refresher struct {
	session  core.Session
	logger   *slog.Logger
	interval time.Duration
}

func (w *Refresher) Run(ctx context.Context) error {
	w.logger.Info("refresher start", "interval", w.interval)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.interval):
		}

		if err := w.run(ctx); err != nil {
			w.logger.Error("refresh", "err", err)
		}
	}
}

func (w *Refresher) run(ctx context.Context) error {
	if !w.session.State().Connected() {
		return nil
	}

	if err := w.session.RefreshAll(ctx); err != nil && err != core.ErrNotConnected {
		return err
	}

	return nil
}
