package scheduler

import (
	"context"
	"time"

	"github.com/southernMD/railway-reservation/internal/domain/port/core"
	"github.com/southernMD/railway-reservation/internal/domain/port/usecase"
	"github.com/southernMD/railway-reservation/internal/infrastructure/adapter/database"
)

// PeriodicRunner drives the recurring waiting-order work: the matcher
// sweep and the expiry sweep. One goroutine, one ticker; sweeps never
// overlap themselves.
type PeriodicRunner struct {
	waitingOrders usecase.WaitingOrderUseCase
	interval      time.Duration
	sweepTimeout  time.Duration
	timeProvider  core.TimeProvider
	logger        core.Logger
	stopChan      chan struct{}
}

// NewPeriodicRunner creates a new periodic runner
func NewPeriodicRunner(
	waitingOrders usecase.WaitingOrderUseCase,
	interval time.Duration,
	timeProvider core.TimeProvider,
	logger core.Logger,
) *PeriodicRunner {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &PeriodicRunner{
		waitingOrders: waitingOrders,
		interval:      interval,
		sweepTimeout:  2 * time.Minute,
		timeProvider:  timeProvider,
		logger:        logger,
		stopChan:      make(chan struct{}),
	}
}

// Start launches the sweep loop. The first sweep runs after one full
// interval so boot recovery finishes before the matcher touches seats.
func (r *PeriodicRunner) Start() {
	go r.run()
}

// Stop terminates the sweep loop
func (r *PeriodicRunner) Stop() {
	close(r.stopChan)
}

func (r *PeriodicRunner) run() {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("Waiting-order sweep loop started", map[string]any{
		"interval": r.interval.String(),
	})

	for {
		select {
		case <-r.stopChan:
			r.logger.Info("Waiting-order sweep loop stopped", nil)
			return
		case <-ticker.C:
			r.sweep()
		}
	}
}

// sweep runs the expiry pass first so the matcher never assigns seats
// to orders that are already stale
func (r *PeriodicRunner) sweep() {
	ctx, cancel := r.timeProvider.WithTimeout(context.Background(), core.Duration(r.sweepTimeout))
	defer cancel()

	err := database.RetryOnTransientError(ctx, database.DefaultRetryConfig(), func() error {
		return r.waitingOrders.ProcessExpiredOrders(ctx)
	}, r.logger)
	if err != nil {
		r.logger.Error("Expiry sweep failed", map[string]any{
			"error": err.Error(),
		})
	}

	err = database.RetryOnTransientError(ctx, database.DefaultRetryConfig(), func() error {
		return r.waitingOrders.ProcessWaitingOrders(ctx)
	}, r.logger)
	if err != nil {
		r.logger.Error("Matcher sweep failed", map[string]any{
			"error": err.Error(),
		})
	}
}
