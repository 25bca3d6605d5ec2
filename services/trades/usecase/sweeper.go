package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/nairaxchange/internal/pkg/logger"
	"github.com/piresc/nairaxchange/services/trades"
	"github.com/robfig/cron/v3"
)

const defaultSweepSpec = "@every 1m"

// ExpirySweeper periodically expires overdue trades
type ExpirySweeper struct {
	uc      trades.TradeUC
	spec    string
	timeout time.Duration
	cron    *cron.Cron
}

// NewExpirySweeper schedules uc.ExpireOverdue on the cron spec
func NewExpirySweeper(uc trades.TradeUC, spec string) *ExpirySweeper {
	if spec == "" {
		spec = defaultSweepSpec
	}
	return &ExpirySweeper{
		uc:      uc,
		spec:    spec,
		timeout: 30 * time.Second,
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
	}
}

// Start registers the sweep job and starts the scheduler
func (s *ExpirySweeper) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.Sweep); err != nil {
		return fmt.Errorf("invalid expiry sweep schedule %q: %w", s.spec, err)
	}
	s.cron.Start()
	logger.Info("Trade expiry sweeper started", logger.String("schedule", s.spec))
	return nil
}

// Sweep runs one expiry pass
func (s *ExpirySweeper) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if _, err := s.uc.ExpireOverdue(ctx, time.Now().UTC()); err != nil {
		logger.Error("Trade expiry sweep failed", logger.Err(err))
	}
}

// Stop waits for a running sweep to finish or ctx to end
func (s *ExpirySweeper) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
