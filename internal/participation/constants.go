package participation

import "time"

// DefaultDanglingLimit caps one reconciliation report
const DefaultDanglingLimit = 500

// DefaultDanglingGrace is how old a participation must be before a missing claim counts
const DefaultDanglingGrace = 5 * time.Minute

// Error context messages
const (
	ErrContextGetCampaignFailed    = "failed to get campaign"
	ErrContextCheckParticipation   = "failed to check prior participation"
	ErrContextGetPoolEntriesFailed = "failed to get prize pool entries"
	ErrContextClaimCodeFailed      = "failed to generate claim code"
	ErrContextBeginTxFailed        = "failed to begin transaction"
	ErrContextInsertParticipation  = "failed to insert participation"
	ErrContextDecrementStockFailed = "failed to decrement prize stock"
	ErrContextInsertClaimFailed    = "failed to insert claim"
	ErrContextIncrementCounters    = "failed to increment campaign counters"
	ErrContextCommitFailed         = "failed to commit transaction"
	ErrContextFindDanglingFailed   = "failed to find dangling participations"
	ErrContextEmailRequired        = "participant email is required"
)

// Log messages
const (
	LogMsgSpinStarted          = "Spin started"
	LogMsgSpinCompleted        = "Spin completed"
	LogMsgAlreadyParticipated  = "Participant already spun this campaign"
	LogMsgZeroProbabilityMass  = "Prize pool has zero probability mass"
	LogMsgPrizeOutOfStock      = "Prize stock exhausted during draw"
	LogMsgPublishFailed        = "Failed to publish lottery event"
	LogMsgDanglingParticipants = "Found participations without claims"
	LogMsgStarFallbackUsed     = "Star-based entries drawn without rating, using uniform weight"
)
