package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/ReviewLottery_Go/internal/alert"
	"github.com/osse101/ReviewLottery_Go/internal/config"
	"github.com/osse101/ReviewLottery_Go/internal/event"
	"github.com/osse101/ReviewLottery_Go/internal/metrics"
)

// RegisterEventHandlers subscribes the metrics collector and the operator
// alert notifier. The campaign service subscribes itself when constructed.
func RegisterEventHandlers(bus event.Bus, cfg *config.Config) error {
	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	notifier, err := alert.NewNotifier(cfg.DiscordAlertWebhookURL)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedCreateNotifier, err)
	}
	alert.Subscribe(bus, notifier)
	slog.Info(LogMsgAlertNotifierRegistered, "discord", cfg.DiscordAlertWebhookURL != "")

	return nil
}
