package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string            `json:"version"`
	Type     Type              `json:"type"`
	Payload  interface{}       `json:"payload"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// DrawCompletedPayloadV1 describes a committed lottery draw
type DrawCompletedPayloadV1 struct {
	CampaignID    string `json:"campaign_id"`
	CommerceID    string `json:"commerce_id"`
	PrizeID       string `json:"prize_id"`
	PrizeName     string `json:"prize_name"`
	Rating        int    `json:"rating"`
	VisualSegment int    `json:"visual_segment"`
	Timestamp     int64  `json:"timestamp"`
}

// ClaimRedeemedPayloadV1 describes a redemption attempt and its outcome
type ClaimRedeemedPayloadV1 struct {
	ClaimID    string `json:"claim_id"`
	CampaignID string `json:"campaign_id"`
	Outcome    string `json:"outcome"`
	Timestamp  int64  `json:"timestamp"`
}

// ClaimsExpiredPayloadV1 reports a sweep result
type ClaimsExpiredPayloadV1 struct {
	Count     int64 `json:"count"`
	Timestamp int64 `json:"timestamp"`
}

// CampaignScannedPayloadV1 reports a QR scan on a campaign landing page
type CampaignScannedPayloadV1 struct {
	CampaignID string `json:"campaign_id"`
	Timestamp  int64  `json:"timestamp"`
}

// AnomalyPayloadV1 flags a condition an operator should look at
type AnomalyPayloadV1 struct {
	Kind       string `json:"kind"`
	CampaignID string `json:"campaign_id,omitempty"`
	Detail     string `json:"detail"`
	Timestamp  int64  `json:"timestamp"`
}

// NewDrawCompletedEvent creates a draw completed event
func NewDrawCompletedEvent(payload DrawCompletedPayloadV1) Event {
	payload.Timestamp = time.Now().Unix()
	return Event{Version: EventSchemaVersion, Type: DrawCompleted, Payload: payload}
}

// NewClaimRedeemedEvent creates a claim redeemed event
func NewClaimRedeemedEvent(claimID, campaignID, outcome string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ClaimRedeemed,
		Payload: ClaimRedeemedPayloadV1{
			ClaimID:    claimID,
			CampaignID: campaignID,
			Outcome:    outcome,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewClaimsExpiredEvent creates a sweep result event
func NewClaimsExpiredEvent(count int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ClaimsExpired,
		Payload: ClaimsExpiredPayloadV1{Count: count, Timestamp: time.Now().Unix()},
	}
}

// NewCampaignScannedEvent creates a scan event
func NewCampaignScannedEvent(campaignID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CampaignScanned,
		Payload: CampaignScannedPayloadV1{CampaignID: campaignID, Timestamp: time.Now().Unix()},
	}
}

// NewAnomalyEvent creates an anomaly event
func NewAnomalyEvent(kind, campaignID, detail string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AnomalyDetected,
		Payload: AnomalyPayloadV1{
			Kind:       kind,
			CampaignID: campaignID,
			Detail:     detail,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: map[string]string{"kind": kind},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
