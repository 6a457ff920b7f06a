package config

import "time"

// Defaults applied when the environment does not set a value
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "review-lottery"
	DefaultVersion     = "dev"

	DefaultDBMaxConns        = 10
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = time.Hour

	DefaultCampaignCacheSize = 256
	DefaultCampaignCacheTTL  = 30 * time.Second

	DefaultClaimSweepInterval = 15 * time.Minute
	DefaultReconcileInterval  = time.Hour
	DefaultReconcileGrace     = 5 * time.Minute
	DefaultWorkerCount        = 2

	DefaultEventMaxRetries     = 3
	DefaultEventRetryDelay     = 2 * time.Second
	DefaultEventDeadLetterPath = "logs/event_deadletter.jsonl"
)
