package usecase

import (
	"context"
	"log/slog"
	"time"

	"AOSocial/internal/ports"
)

// BalanceWatcher wires the cron-like driver with balance refreshes.
type BalanceWatcher struct {
	driver  ports.Scheduler
	board   *BalanceBoard
	owner   string
	publish func(Board)
	logger  *slog.Logger
}

// NewBalanceWatcher returns a helper to start/stop recurring refreshes for owner.
// publish receives every successfully refreshed board.
func NewBalanceWatcher(driver ports.Scheduler, board *BalanceBoard, owner string, publish func(Board), log *slog.Logger) *BalanceWatcher {
	return &BalanceWatcher{driver: driver, board: board, owner: owner, publish: publish, logger: log}
}

// Start registers the refresh with the provided scheduler.
func (w *BalanceWatcher) Start(ctx context.Context) error {
	if w.driver == nil || w.board == nil {
		return nil
	}

	job := func(trigger time.Time) {
		board, err := w.board.Refresh(ctx, w.owner)
		if err != nil {
			if w.logger != nil {
				w.logger.Error("balance refresh failed", "owner", w.owner, "trigger", trigger, "error", err)
			}
			return
		}
		if w.publish != nil {
			w.publish(board)
		}
	}

	return w.driver.Start(ctx, job)
}

// Stop gracefully tears down the underlying scheduler.
func (w *BalanceWatcher) Stop(ctx context.Context) error {
	if w.driver == nil {
		return nil
	}

	return w.driver.Stop(ctx)
}
