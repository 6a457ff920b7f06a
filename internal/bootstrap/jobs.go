package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/ReviewLottery_Go/internal/claim"
	"github.com/osse101/ReviewLottery_Go/internal/config"
	"github.com/osse101/ReviewLottery_Go/internal/event"
	"github.com/osse101/ReviewLottery_Go/internal/participation"
	"github.com/osse101/ReviewLottery_Go/internal/scheduler"
	"github.com/osse101/ReviewLottery_Go/internal/worker"
)

// StartBackgroundJobs starts the worker pool and schedules the claim expiry
// sweep and the participation reconciliation.
func StartBackgroundJobs(cfg *config.Config, claims claim.Service, participations participation.Service, bus event.Bus) (*scheduler.Scheduler, *worker.Pool, error) {
	pool := worker.NewPool(cfg.WorkerCount, JobQueueSize, JobRunTimeout)

	sched, err := scheduler.New(pool)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedScheduler, err)
	}

	if err := sched.Schedule(cfg.ClaimSweepInterval, worker.NewClaimExpiryJob(claims)); err != nil {
		_ = sched.Stop()
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedScheduleJob, err)
	}
	if err := sched.Schedule(cfg.ReconcileInterval, worker.NewReconcileJob(participations, bus, cfg.ReconcileGrace)); err != nil {
		_ = sched.Stop()
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedScheduleJob, err)
	}

	pool.Start()
	sched.Start()

	slog.Info(LogMsgJobsStarted,
		"workers", cfg.WorkerCount,
		"claim_sweep_interval", cfg.ClaimSweepInterval,
		"reconcile_interval", cfg.ReconcileInterval)

	return sched, pool, nil
}
