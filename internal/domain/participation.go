package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

var emailFolder = cases.Fold()

// NormalizeEmail returns the identity key used for one-participation-per-campaign checks
func NormalizeEmail(email string) string {
	return emailFolder.String(strings.TrimSpace(email))
}

// SpinResult is the wheel outcome stored with a participation
type SpinResult struct {
	Angle         float64 `json:"angle"`
	Segment       int     `json:"segment"`
	VisualSegment int     `json:"visual_segment"`
}

// Participation is one participant's entry into a campaign
type Participation struct {
	ID               uuid.UUID  `json:"id"`
	CampaignID       uuid.UUID  `json:"campaign_id"`
	CommerceID       uuid.UUID  `json:"commerce_id"`
	ParticipantEmail string     `json:"participant_email"`
	ParticipantName  string     `json:"participant_name"`
	RatingGiven      int        `json:"rating_given"`
	PrizeWonID       uuid.UUID  `json:"prize_won_id"`
	SpinResult       SpinResult `json:"spin_result"`
	CreatedAt        time.Time  `json:"created_at"`
}

// DanglingParticipation is a participation with no matching claim
type DanglingParticipation struct {
	ParticipationID  uuid.UUID `json:"participation_id"`
	CampaignID       uuid.UUID `json:"campaign_id"`
	ParticipantEmail string    `json:"participant_email"`
	PrizeWonID       uuid.UUID `json:"prize_won_id"`
	CreatedAt        time.Time `json:"created_at"`
}
