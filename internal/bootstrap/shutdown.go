package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/ReviewLottery_Go/internal/event"
	"github.com/osse101/ReviewLottery_Go/internal/scheduler"
	"github.com/osse101/ReviewLottery_Go/internal/server"
	"github.com/osse101/ReviewLottery_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown stops the HTTP server first, then background jobs, and
// flushes pending event retries last. Errors are logged and shutdown continues.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgShuttingDownJobs)
	if c.Scheduler != nil {
		if err := c.Scheduler.Stop(); err != nil {
			slog.Error(LogMsgSchedulerStopFailed, "error", err)
		}
	}
	if c.WorkerPool != nil {
		c.WorkerPool.Stop()
	}

	slog.Info(LogMsgShuttingDownEventPublisher)
	if c.ResilientPublisher != nil {
		if err := c.ResilientPublisher.Wait(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
