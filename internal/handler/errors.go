package handler

// Generic HTTP error messages for client responses
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidID             = "Invalid %s: must be a UUID"
)

// Operation names used in logs
const (
	OpSpin           = "Spin"
	OpLookupClaim    = "Lookup claim"
	OpRetrieveClaims = "Retrieve claims"
	OpRedeemClaim    = "Redeem claim"
	OpAnonymizeClaim = "Anonymize claim"
	OpPublicCampaign = "Get public campaign"
	OpRecordScan     = "Record scan"
	OpPoolSummary    = "Get prize pool summary"
	OpDashboardStats = "Get dashboard stats"
)

// Success messages
const (
	MsgScanRecorded = "Scan recorded"
)
