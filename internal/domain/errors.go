package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Draw errors
	ErrMsgNoPrizesAvailable   = "no prizes available"
	ErrMsgZeroProbabilityMass = "prize pool has zero probability mass"
	ErrMsgPrizeOutOfStock     = "prize went out of stock during draw"

	// Participation errors
	ErrMsgAlreadyParticipated = "already participated in this campaign"
	ErrMsgInvalidRating       = "rating must be between 1 and 5"

	// Campaign errors
	ErrMsgCampaignNotFound  = "campaign not found"
	ErrMsgCampaignInactive  = "campaign is not active"
	ErrMsgPrizePoolNotFound = "prize pool not found"

	// Claim errors
	ErrMsgClaimNotFound      = "claim not found"
	ErrMsgClaimNotRedeemed   = "claim has not been redeemed"
	ErrMsgClaimCodeExhausted = "could not generate a unique claim code"
	ErrMsgClaimCodeConflict  = "claim code already in use"

	// Transaction state
	ErrMsgTxClosed = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Draw errors
	ErrNoPrizesAvailable   = errors.New(ErrMsgNoPrizesAvailable)
	ErrZeroProbabilityMass = errors.New(ErrMsgZeroProbabilityMass)
	ErrPrizeOutOfStock     = errors.New(ErrMsgPrizeOutOfStock)

	// Participation errors
	ErrAlreadyParticipated = errors.New(ErrMsgAlreadyParticipated)
	ErrInvalidRating       = errors.New(ErrMsgInvalidRating)

	// Campaign errors
	ErrCampaignNotFound  = errors.New(ErrMsgCampaignNotFound)
	ErrCampaignInactive  = errors.New(ErrMsgCampaignInactive)
	ErrPrizePoolNotFound = errors.New(ErrMsgPrizePoolNotFound)

	// Claim errors
	ErrClaimNotFound      = errors.New(ErrMsgClaimNotFound)
	ErrClaimNotRedeemed   = errors.New(ErrMsgClaimNotRedeemed)
	ErrClaimCodeExhausted = errors.New(ErrMsgClaimCodeExhausted)
	ErrClaimCodeConflict  = errors.New(ErrMsgClaimCodeConflict)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
