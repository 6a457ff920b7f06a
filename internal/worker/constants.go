package worker

import "time"

// Log messages - worker pool
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobFinished = "Worker job finished"
	LogMsgQueueFull         = "Worker queue full, dropping job"
	LogMsgPoolStopped       = "Worker pool stopped"
)

// Log messages - claim expiry
const (
	LogMsgClaimSweepCompleted = "Claim expiry sweep completed"
)

// Log messages - reconciliation
const (
	LogMsgDanglingParticipation = "Participation has no claim"
	LogMsgReconcileCompleted    = "Reconciliation completed"
	LogMsgAnomalyPublishFailed  = "Failed to publish anomaly event"
)

// Job names
const (
	JobNameClaimExpiry = "claim_expiry"
	JobNameReconcile   = "reconcile_participations"
)

// DefaultJobTimeout bounds a single job run
const DefaultJobTimeout = 2 * time.Minute

// AnomalyDetailDangling is the alert text for unreconciled participations
const AnomalyDetailDangling = "%d participation(s) have no claim, oldest from %s"
