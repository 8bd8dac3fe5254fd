package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// staleOrderSweepSchedule runs the sweep at the top of every hour.
const staleOrderSweepSchedule = "0 * * * *"

// StaleOrderJob periodically cancels pending orders older than the
// configured age. Sellers who never confirm an order should not hold the
// buyer's order history in pending forever.
type StaleOrderJob struct {
	handler commands.CancelStaleOrdersCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderJob creates a job that cancels pending orders older than maxAge.
func NewStaleOrderJob(
	handler commands.CancelStaleOrdersCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *StaleOrderJob {
	return &StaleOrderJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_order_job"),
	}
}

// Start begins the hourly stale-order sweep.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc(staleOrderSweepSchedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCancelStaleOrdersCommand(j.maxAge)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep misconfigured", "error", cmdErr)
			return
		}

		cancelled, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep failed", "error", handleErr)
			return
		}

		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Cancelled stale pending orders", "count", cancelled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started (running hourly)", "max_age", j.maxAge.String())
	return nil
}

// Stop stops the stale-order sweep.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}
