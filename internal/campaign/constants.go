package campaign

import "time"

// CacheSchemaVersion invalidates cached entries when the cached shape changes
const CacheSchemaVersion = "1.0"

// Cache defaults used when the caller passes non-positive values
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 30 * time.Second
)

// Error context messages
const (
	ErrContextGetCampaignFailed  = "failed to get campaign"
	ErrContextGetCommerceFailed  = "failed to get commerce"
	ErrContextGetPrizePoolFailed = "failed to get prize pool"
	ErrContextIncrementScans     = "failed to increment scan counter"
	ErrContextGetStatsFailed     = "failed to get dashboard stats"
)

// Log messages
const (
	LogMsgPublicCampaignCacheHit = "Public campaign served from cache"
	LogMsgCommerceMissing        = "Campaign references a missing commerce"
	LogMsgPublishFailed          = "Failed to publish campaign event"
)
