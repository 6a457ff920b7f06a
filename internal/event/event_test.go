package event

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got Event

	bus.Subscribe(ClaimRedeemed, func(ctx context.Context, e Event) error {
		got = e
		return nil
	})

	evt := NewClaimRedeemedEvent("claim-1", "camp-1", "redeemed")
	require.NoError(t, bus.Publish(context.Background(), evt))

	assert.Equal(t, ClaimRedeemed, got.Type)
	payload, ok := got.Payload.(ClaimRedeemedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "redeemed", payload.Outcome)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), NewClaimsExpiredEvent(3)))
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0
	handler := func(ctx context.Context, e Event) error {
		count++
		return nil
	}

	bus.Subscribe(DrawCompleted, handler)
	bus.Subscribe(DrawCompleted, handler)

	require.NoError(t, bus.Publish(context.Background(), NewDrawCompletedEvent(DrawCompletedPayloadV1{PrizeName: "Coffee"})))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	bus.Subscribe(AnomalyDetected, func(ctx context.Context, e Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), NewAnomalyEvent(AnomalyZeroProbabilityMass, "camp", "no mass"))
	assert.Error(t, err)
}

func TestCalculateRetryDelay(t *testing.T) {
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(2*time.Second, 1))
	assert.Equal(t, 8*time.Second, CalculateRetryDelay(2*time.Second, 3))
}

func TestResilientPublisher_RetriesThenSucceeds(t *testing.T) {
	bus := NewMemoryBus()
	var calls atomic.Int32
	bus.Subscribe(AnomalyDetected, func(ctx context.Context, e Event) error {
		if calls.Add(1) < 3 {
			return errors.New("webhook down")
		}
		return nil
	})

	p := NewResilientPublisher(bus, ResilientConfig{MaxRetries: 3, RetryDelay: time.Millisecond})
	p.sleep = func(time.Duration) {}

	require.NoError(t, p.Publish(context.Background(), NewAnomalyEvent(AnomalyDanglingParticipation, "", "1 row")))
	require.NoError(t, p.Wait(context.Background()))

	assert.Equal(t, int32(3), calls.Load())
}

func TestResilientPublisher_DeadLetters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dead.jsonl")
	bus := NewMemoryBus()
	bus.Subscribe(AnomalyDetected, func(ctx context.Context, e Event) error {
		return errors.New("webhook down")
	})

	p := NewResilientPublisher(bus, ResilientConfig{MaxRetries: 2, RetryDelay: time.Millisecond, DeadLetterPath: path})
	p.sleep = func(time.Duration) {}

	require.NoError(t, p.Publish(context.Background(), NewAnomalyEvent(AnomalyZeroProbabilityMass, "camp-9", "all weights zero")))
	require.NoError(t, p.Wait(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry deadLetterEntry
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, AnomalyDetected, entry.Event.Type)
	assert.Equal(t, 2, entry.Attempts)
	assert.Contains(t, entry.LastError, "webhook down")
}
