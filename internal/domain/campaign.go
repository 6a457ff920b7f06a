package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultExpirationDays is used when a campaign does not set its own claim expiry
const DefaultExpirationDays = 30

// CampaignSettings configures claim handling for a campaign
type CampaignSettings struct {
	ExpirationDays    int  `json:"expiration_days"`
	MaxParticipations *int `json:"max_participations,omitempty"`
}

// CampaignStats are informational counters, never used for decisions
type CampaignStats struct {
	TotalScans   int64 `json:"total_scans"`
	TotalReviews int64 `json:"total_reviews"`
	TotalWinners int64 `json:"total_winners"`
}

// Campaign is a time-boxed lottery run by a commerce
type Campaign struct {
	ID          uuid.UUID        `json:"id"`
	CommerceID  uuid.UUID        `json:"commerce_id"`
	Name        string           `json:"name"`
	Description *string          `json:"description,omitempty"`
	StartDate   time.Time        `json:"start_date"`
	EndDate     time.Time        `json:"end_date"`
	IsActive    bool             `json:"is_active"`
	PrizePoolID uuid.UUID        `json:"prize_pool_id"`
	Settings    CampaignSettings `json:"settings"`
	Stats       CampaignStats    `json:"stats"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// IsOpen reports whether participations are accepted at the given instant
func (c Campaign) IsOpen(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	return !now.Before(c.StartDate) && !now.After(c.EndDate)
}

// ExpirationDays returns the configured claim lifetime in days, falling back to the default
func (c Campaign) ExpirationDays() int {
	if c.Settings.ExpirationDays <= 0 {
		return DefaultExpirationDays
	}
	return c.Settings.ExpirationDays
}

// ClaimExpiry computes the expiry of a claim drawn at the given instant
func (c Campaign) ClaimExpiry(drawnAt time.Time) time.Time {
	return drawnAt.AddDate(0, 0, c.ExpirationDays())
}
