package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/ReviewLottery_Go/internal/event"
	"github.com/osse101/ReviewLottery_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all lottery events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, t := range []event.Type{
		event.DrawCompleted,
		event.ClaimRedeemed,
		event.ClaimsExpired,
		event.CampaignScanned,
		event.AnomalyDetected,
	} {
		bus.Subscribe(t, e.HandleEvent)
	}
}

// HandleEvent updates the counters for one event. Decode failures are logged, never returned.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.DrawCompleted:
		var p event.DrawCompletedPayloadV1
		if p, err = event.DecodePayload[event.DrawCompletedPayloadV1](evt.Payload); err == nil {
			DrawsTotal.WithLabelValues(p.PrizeName).Inc()
			RatingsSubmitted.WithLabelValues(strconv.Itoa(p.Rating)).Inc()
		}
	case event.ClaimRedeemed:
		var p event.ClaimRedeemedPayloadV1
		if p, err = event.DecodePayload[event.ClaimRedeemedPayloadV1](evt.Payload); err == nil {
			Redemptions.WithLabelValues(p.Outcome).Inc()
		}
	case event.ClaimsExpired:
		var p event.ClaimsExpiredPayloadV1
		if p, err = event.DecodePayload[event.ClaimsExpiredPayloadV1](evt.Payload); err == nil {
			ClaimsExpired.Add(float64(p.Count))
		}
	case event.CampaignScanned:
		CampaignScans.Inc()
	case event.AnomalyDetected:
		var p event.AnomalyPayloadV1
		if p, err = event.DecodePayload[event.AnomalyPayloadV1](evt.Payload); err == nil {
			Anomalies.WithLabelValues(p.Kind).Inc()
		}
	}

	if err != nil {
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
	}
	return nil
}
