package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/ReviewLottery_Go/internal/config"
	"github.com/osse101/ReviewLottery_Go/internal/event"
)

// InitializeEventSystem creates the in-memory bus and wraps it in a resilient
// publisher that retries with backoff and dead-letters what never lands.
// Services publish through the returned publisher.
func InitializeEventSystem(cfg *config.Config) (*event.ResilientPublisher, error) {
	if cfg.EventDeadLetterPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.EventDeadLetterPath), DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
		}
	}

	publisher := event.NewResilientPublisher(event.NewMemoryBus(), event.ResilientConfig{
		MaxRetries:     cfg.EventMaxRetries,
		RetryDelay:     cfg.EventRetryDelay,
		DeadLetterPath: cfg.EventDeadLetterPath,
	})

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", cfg.EventMaxRetries,
		"retry_delay", cfg.EventRetryDelay,
		"deadletter_path", cfg.EventDeadLetterPath)

	return publisher, nil
}
