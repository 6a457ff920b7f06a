package bootstrap

import "time"

// DirPermission is the permission for directories created at startup
const DirPermission = 0755

// Background job sizing
const (
	JobQueueSize  = 16
	JobRunTimeout = 5 * time.Minute
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized    = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir = "failed to create dead-letter directory"
)

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgAlertNotifierRegistered    = "Alert notifier registered"
	ErrMsgFailedCreateNotifier       = "failed to create alert notifier"
)

// Log messages for background jobs
const (
	LogMsgJobsStarted       = "Background jobs started"
	ErrMsgFailedScheduler   = "failed to create scheduler"
	ErrMsgFailedScheduleJob = "failed to schedule job"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownJobs           = "Stopping background jobs..."
	LogMsgShuttingDownEventPublisher = "Flushing event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgSchedulerStopFailed        = "Scheduler shutdown failed"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
)
