package event

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/osse101/ReviewLottery_Go/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries     int
	RetryDelay     time.Duration
	DeadLetterPath string // empty disables the dead letter file
}

// ResilientPublisher retries failed publishes in the background and dead-letters
// events that never succeed. Callers are never blocked on a subscriber failure.
type ResilientPublisher struct {
	inner  Bus
	config ResilientConfig
	mu     sync.Mutex
	wg     sync.WaitGroup
	sleep  func(time.Duration)
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, config ResilientConfig) *ResilientPublisher {
	if config.MaxRetries <= 0 {
		config.MaxRetries = DefaultMaxRetries
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = DefaultRetryDelay
	}
	return &ResilientPublisher{inner: inner, config: config, sleep: time.Sleep}
}

// Publish delivers the event; on failure it schedules retries and returns nil
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgPublishFailedRetrying,
		"event_type", event.Type,
		"error", err,
		"retries", p.config.MaxRetries)

	p.wg.Add(1)
	go p.retryLoop(event)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Wait blocks until in-flight retries finish or ctx is done
func (p *ResilientPublisher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *ResilientPublisher) retryLoop(event Event) {
	defer p.wg.Done()
	ctx := context.Background()

	var lastErr error
	for attempt := 1; attempt <= p.config.MaxRetries; attempt++ {
		p.sleep(CalculateRetryDelay(p.config.RetryDelay, attempt))

		lastErr = p.inner.Publish(ctx, event)
		if lastErr == nil {
			logger.Info(LogMsgRetrySucceeded, "event_type", event.Type, "attempt", attempt)
			return
		}
		logger.Warn(LogMsgRetryFailed, "event_type", event.Type, "attempt", attempt, "error", lastErr)
	}

	p.writeToDeadLetter(event, lastErr)
}

type deadLetterEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Event     Event     `json:"event"`
	Attempts  int       `json:"attempts"`
	LastError string    `json:"last_error,omitempty"`
}

func (p *ResilientPublisher) writeToDeadLetter(event Event, lastErr error) {
	if p.config.DeadLetterPath == "" {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	f, err := os.OpenFile(p.config.DeadLetterPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		logger.Error(LogMsgDeadLetterOpenFailed, "error", err, "path", p.config.DeadLetterPath)
		return
	}
	defer f.Close()

	entry := deadLetterEntry{
		Timestamp: time.Now(),
		Event:     event,
		Attempts:  p.config.MaxRetries,
	}
	if lastErr != nil {
		entry.LastError = lastErr.Error()
	}

	if err := json.NewEncoder(f).Encode(entry); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "error", err)
		return
	}
	logger.Info(LogMsgDeadLettered, "event_type", event.Type)
}
