package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/ReviewLottery_Go/internal/logger"
)

// Job is a unit of background work
type Job interface {
	Name() string
	Process(ctx context.Context) error
}

// Pool runs jobs on a fixed number of goroutines
type Pool struct {
	workers    int
	jobTimeout time.Duration
	jobQueue   chan Job
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
	stopOnce   sync.Once
}

// NewPool creates a pool. Jobs get jobTimeout each; zero means DefaultJobTimeout.
func NewPool(workers, queueSize int, jobTimeout time.Duration) *Pool {
	if workers < 1 {
		workers = 1
	}
	if jobTimeout <= 0 {
		jobTimeout = DefaultJobTimeout
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:    workers,
		jobTimeout: jobTimeout,
		jobQueue:   make(chan Job, queueSize),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.ctx.Done():
			return
		}
	}
}

func (p *Pool) run(job Job) {
	ctx, cancel := context.WithTimeout(p.ctx, p.jobTimeout)
	defer cancel()

	log := logger.FromContext(ctx).With("job", job.Name())
	start := time.Now()
	if err := job.Process(ctx); err != nil {
		log.Error(LogMsgWorkerJobFailed, "error", err)
		return
	}
	log.Debug(LogMsgWorkerJobFinished, "duration_ms", time.Since(start).Milliseconds())
}

// TryEnqueue queues a job without blocking. It reports false when the queue is
// full or the pool is stopped.
func (p *Pool) TryEnqueue(job Job) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		logger.FromContext(p.ctx).Warn(LogMsgQueueFull, "job", job.Name())
		return false
	}
}

// Stop cancels running jobs and waits for the workers to exit
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		p.cancel()
		p.wg.Wait()
		logger.FromContext(context.Background()).Info(LogMsgPoolStopped)
	})
}
