package claim

// Error context messages
const (
	ErrContextGetClaimFailed      = "failed to get claim"
	ErrContextMarkClaimedFailed   = "failed to mark claim as claimed"
	ErrContextListClaimsFailed    = "failed to list claims"
	ErrContextAnonymizeFailed     = "failed to anonymize claim"
	ErrContextExpireOverdueFailed = "failed to expire overdue claims"
	ErrContextRedeemerRequired    = "redeemed_by is required"
	ErrContextEmailRequired       = "participant email is required"
)

// Log messages
const (
	LogMsgLazyExpireFailed = "Failed to persist lazy claim expiry"
	LogMsgClaimRedeemed    = "Claim redemption attempted"
	LogMsgClaimAnonymized  = "Claim anonymized"
	LogMsgClaimsExpired    = "Expired overdue claims"
	LogMsgPublishFailed    = "Failed to publish claim event"
)
