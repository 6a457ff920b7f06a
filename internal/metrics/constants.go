package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Lottery metric names
const (
	MetricNameDrawsTotal       = "lottery_draws_total"
	MetricNameDrawsRejected    = "lottery_draws_rejected_total"
	MetricNameRedemptions      = "claim_redemptions_total"
	MetricNameClaimsExpired    = "claims_expired_total"
	MetricNameCampaignScans    = "campaign_scans_total"
	MetricNameAnomalies        = "lottery_anomalies_total"
	MetricNameRatingsSubmitted = "lottery_ratings_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
)

// Lottery metric help text
const (
	HelpTextDrawsTotal       = "Total number of committed draws by prize"
	HelpTextDrawsRejected    = "Total number of draw requests rejected by reason"
	HelpTextRedemptions      = "Total number of redemption attempts by outcome"
	HelpTextClaimsExpired    = "Total number of claims moved to expired by the sweep"
	HelpTextCampaignScans    = "Total number of campaign QR scans"
	HelpTextAnomalies        = "Total number of operator anomalies by kind"
	HelpTextRatingsSubmitted = "Total number of ratings submitted with a draw"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelPrize   = "prize"
	LabelReason  = "reason"
	LabelOutcome = "outcome"
	LabelKind    = "kind"
	LabelRating  = "rating"
)

// HTTPLatencyBuckets ranges from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
)

// Draw rejection reasons
const (
	ReasonInvalidRating       = "invalid_rating"
	ReasonInvalidInput        = "invalid_input"
	ReasonCampaignNotFound    = "campaign_not_found"
	ReasonCampaignInactive    = "campaign_inactive"
	ReasonAlreadyParticipated = "already_participated"
	ReasonOutOfStock          = "out_of_stock"
	ReasonNoPrizes            = "no_prizes"
	ReasonZeroProbability     = "zero_probability_mass"
	ReasonClaimCode           = "claim_code"
	ReasonInternal            = "internal"
)
