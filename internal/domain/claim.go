package domain

import (
	"time"

	"github.com/google/uuid"
)

// ClaimStatus is the lifecycle state of a claim
type ClaimStatus string

const (
	ClaimStatusPending ClaimStatus = "pending"
	ClaimStatusClaimed ClaimStatus = "claimed"
	ClaimStatusExpired ClaimStatus = "expired"
)

// RedactedValue replaces personal data on anonymized claims
const RedactedValue = "[REDACTED]"

// Claim is a won prize awaiting redemption
type Claim struct {
	ID               uuid.UUID     `json:"id"`
	ParticipationID  uuid.UUID     `json:"participation_id"`
	CampaignID       uuid.UUID     `json:"campaign_id"`
	CommerceID       uuid.UUID     `json:"commerce_id"`
	PrizeID          uuid.UUID     `json:"prize_id"`
	ParticipantEmail string        `json:"participant_email"`
	ParticipantName  string        `json:"participant_name"`
	ClaimCode        string        `json:"claim_code"`
	Status           ClaimStatus   `json:"status"`
	ExpiresAt        time.Time     `json:"expires_at"`
	ClaimedAt        *time.Time    `json:"claimed_at,omitempty"`
	ClaimedBy        *string       `json:"claimed_by,omitempty"`
	PrizeSnapshot    PrizeSnapshot `json:"prize_snapshot"`
	CreatedAt        time.Time     `json:"created_at"`
}

// EffectiveStatus applies lazy expiry: a pending claim past its expiry reads as expired.
// Claimed is terminal and never expires.
func (c Claim) EffectiveStatus(now time.Time) ClaimStatus {
	if c.Status == ClaimStatusPending && now.After(c.ExpiresAt) {
		return ClaimStatusExpired
	}
	return c.Status
}

// IsExpired reports whether the claim can no longer be redeemed because of its expiry
func (c Claim) IsExpired(now time.Time) bool {
	return c.EffectiveStatus(now) == ClaimStatusExpired
}

// RedeemOutcome is the result of a redemption attempt.
// Already-claimed and expired are user-correctable states, not failures.
type RedeemOutcome string

const (
	RedeemOutcomeRedeemed       RedeemOutcome = "redeemed"
	RedeemOutcomeAlreadyClaimed RedeemOutcome = "already_claimed"
	RedeemOutcomeExpired        RedeemOutcome = "expired"
)

// RedeemResult carries the outcome and the claim as it stands afterwards
type RedeemResult struct {
	Outcome RedeemOutcome `json:"outcome"`
	Claim   *Claim        `json:"claim"`
}

// ClaimView is a participant-facing summary of a claim
type ClaimView struct {
	Claim
	IsExpired bool `json:"is_expired"`
}
