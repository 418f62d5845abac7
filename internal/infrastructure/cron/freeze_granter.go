package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/amitb25/habit-backend-sub001/internal/domain/service"
)

// FreezeGranter periodically runs the weekly streak-freeze grant sweep.
// The sweep is idempotent within a calendar week, so the interval only
// controls how quickly new profiles pick up their first grant.
type FreezeGranter struct {
	freezes  service.FreezeService
	cron     *cron.Cron
	interval time.Duration
	logger   *zap.SugaredLogger
}

// NewFreezeGranter creates a new freeze granter
func NewFreezeGranter(freezes service.FreezeService, interval time.Duration, logger *zap.SugaredLogger) *FreezeGranter {
	return &FreezeGranter{
		freezes:  freezes,
		cron:     cron.New(),
		interval: interval,
		logger:   logger,
	}
}

// Start starts the freeze granter
func (g *FreezeGranter) Start() error {
	cronExpr := fmt.Sprintf("@every %s", g.interval.String())

	g.logger.Infow("starting freeze granter", "interval", g.interval)

	_, err := g.cron.AddFunc(cronExpr, func() {
		g.runSweep()
	})
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	g.cron.Start()
	return nil
}

// Stop stops the freeze granter and waits for a running sweep to finish.
func (g *FreezeGranter) Stop() {
	ctx := g.cron.Stop()
	<-ctx.Done()
	g.logger.Info("freeze granter stopped")
}

func (g *FreezeGranter) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := g.freezes.GrantWeeklyFreezes(ctx); err != nil {
		g.logger.Errorw("freeze grant sweep failed", "error", err)
	}
}
