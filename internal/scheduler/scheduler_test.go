package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ReviewLottery_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	Done chan struct{}
}

func (m *MockJob) Name() string { return "mock" }

func (m *MockJob) Process(ctx context.Context) error {
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10, time.Second)
	pool.Start()
	defer pool.Stop()

	sched, err := New(pool)
	require.NoError(t, err)

	job := &MockJob{Done: make(chan struct{}, 10)}
	require.NoError(t, sched.Schedule(20*time.Millisecond, job))
	sched.Start()
	defer func() { assert.NoError(t, sched.Stop()) }()

	timeout := time.After(2 * time.Second)
	runs := 0
	for runs < 2 {
		select {
		case <-job.Done:
			runs++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, runs, 2)
}

func TestScheduler_RejectsInvalidInterval(t *testing.T) {
	pool := worker.NewPool(1, 1, time.Second)
	defer pool.Stop()

	sched, err := New(pool)
	require.NoError(t, err)
	sched.Start()
	defer func() { _ = sched.Stop() }()

	assert.Error(t, sched.Schedule(0, &MockJob{Done: make(chan struct{}, 1)}))
}
