package event

import "time"

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// Event types published by the lottery services
const (
	DrawCompleted   Type = "lottery.draw.completed"
	ClaimRedeemed   Type = "claim.redeemed"
	ClaimsExpired   Type = "claim.expired.swept"
	CampaignScanned Type = "campaign.scanned"
	AnomalyDetected Type = "lottery.anomaly"
)

// Anomaly kinds carried by AnomalyPayloadV1
const (
	AnomalyZeroProbabilityMass   = "zero_probability_mass"
	AnomalyDanglingParticipation = "dangling_participation"
)

// Retry configuration
const (
	DefaultMaxRetries         = 3
	DefaultRetryDelay         = 2 * time.Second
	DeadLetterFilePermissions = 0644
)

// Log messages
const (
	LogMsgPublishFailedRetrying = "Failed to publish event, initiating async retry"
	LogMsgRetrySucceeded        = "Successfully published event after retry"
	LogMsgRetryFailed           = "Retry failed"
	LogMsgDeadLetterOpenFailed  = "Failed to open dead letter file"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead letter file"
	LogMsgDeadLettered          = "Event written to dead letter queue"
	LogMsgHandlerErrorFormat    = "encountered %d errors while handling event %s: %v"
)

// CalculateRetryDelay returns base * 2^(attempt-1)
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	return baseDelay * time.Duration(1<<(attempt-1))
}
