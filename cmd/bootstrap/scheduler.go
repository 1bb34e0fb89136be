package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"greenrfq/internal/pkg/config"
	"greenrfq/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartScheduler),
)

// StartScheduler runs the periodic distribution work on every tick:
// due-entry notification, expiry sweeps, and the monthly usage reset,
// which is idempotent within a calendar month.
func StartScheduler(
	lc fx.Lifecycle,
	cfg config.Config,
	dispatch commands.DispatchCommands,
	entitlements commands.EntitlementCommands,
	logger *slog.Logger,
) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				runScheduler(ctx, cfg.Distribution.DispatchTick, dispatch, entitlements, logger)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}

func runScheduler(
	ctx context.Context,
	tick time.Duration,
	dispatch commands.DispatchCommands,
	entitlements commands.EntitlementCommands,
	logger *slog.Logger,
) {
	if tick <= 0 {
		tick = time.Minute
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if result, err := dispatch.NotifyDue(ctx, 0); err != nil {
				logger.Error("notification dispatch failed", "error", err)
			} else if result.Selected > 0 {
				logger.Info("notification dispatch completed",
					"selected", result.Selected,
					"notified", result.Notified,
					"failed", result.Failed,
				)
			}

			if expired, err := dispatch.SweepExpired(ctx); err != nil {
				logger.Error("expiry sweep failed", "error", err)
			} else if expired > 0 {
				logger.Info("expired queue entries swept", "count", expired)
			}

			// The reset runs every tick; the SQL guard only touches rows
			// not yet reset this calendar month, so restarts across a
			// month boundary cannot skip a reset.
			if affected, err := entitlements.ResetMonthlyUsage(ctx); err != nil {
				logger.Error("monthly usage reset failed", "error", err)
			} else if affected > 0 {
				logger.Info("monthly usage reset", "subscriptions", affected)
			}
		}
	}
}
