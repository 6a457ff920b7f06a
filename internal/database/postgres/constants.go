package postgres

// Unique index names whose violations map to domain errors
const (
	ConstraintParticipationCampaignEmail = "participations_campaign_email_key"
	ConstraintClaimCode                  = "claims_claim_code_key"
	ConstraintCommerceSlug               = "commerces_slug_key"
)

// DefaultColor is used for prizes and commerces created without a color
const DefaultColor = "#3B82F6"

// Error contexts
const (
	ErrContextGetCampaign         = "failed to get campaign"
	ErrContextGetCommerce         = "failed to get commerce"
	ErrContextGetPrizePool        = "failed to get prize pool"
	ErrContextGetPoolEntries      = "failed to get pool entries"
	ErrContextGetParticipation    = "failed to get participation"
	ErrContextInsertParticipation = "failed to insert participation"
	ErrContextDecrementStock      = "failed to decrement stock"
	ErrContextInsertClaim         = "failed to insert claim"
	ErrContextIncrementCounters   = "failed to increment campaign counters"
	ErrContextBeginTx             = "failed to begin transaction"
	ErrContextCheckClaimCode      = "failed to check claim code"
	ErrContextFindDangling        = "failed to find dangling participations"
	ErrContextGetClaim            = "failed to get claim"
	ErrContextListClaims          = "failed to list claims"
	ErrContextUpdateClaim         = "failed to update claim"
	ErrContextExpireClaims        = "failed to expire overdue claims"
	ErrContextIncrementScans      = "failed to increment scans"
	ErrContextGetStats            = "failed to get dashboard stats"
	ErrContextCreateCommerce      = "failed to create commerce"
	ErrContextCreatePrize         = "failed to create prize"
	ErrContextCreatePrizePool     = "failed to create prize pool"
	ErrContextCreateCampaign      = "failed to create campaign"
	ErrContextUnknownProbability  = "unknown probability mode"
)
