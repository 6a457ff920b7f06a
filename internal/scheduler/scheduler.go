package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/osse101/ReviewLottery_Go/internal/logger"
	"github.com/osse101/ReviewLottery_Go/internal/worker"
)

// Scheduler fires jobs at fixed intervals and hands them to the worker pool
type Scheduler struct {
	sched      gocron.Scheduler
	workerPool *worker.Pool
}

// New creates a scheduler backed by gocron
func New(pool *worker.Pool) (*Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	return &Scheduler{sched: s, workerPool: pool}, nil
}

// Schedule registers a job to run every interval. A tick that finds the queue
// full is skipped; the next tick retries.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) error {
	_, err := s.sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if !s.workerPool.TryEnqueue(job) {
				logger.Warn("Scheduled job skipped", "job", job.Name())
			}
		}),
		gocron.WithName(job.Name()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("schedule %s: %w", job.Name(), err)
	}
	logger.Info("Job scheduled", "job", job.Name(), "interval", interval.String())
	return nil
}

// Start begins firing scheduled jobs
func (s *Scheduler) Start() {
	s.sched.Start()
}

// Stop stops the scheduler and waits for in-flight ticks
func (s *Scheduler) Stop() error {
	return s.sched.Shutdown()
}
