package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProbabilityMode selects how a pool entry's weight is derived
type ProbabilityMode string

const (
	ProbabilityModeFixed     ProbabilityMode = "fixed"
	ProbabilityModeStarBased ProbabilityMode = "star-based"
)

// MinRating and MaxRating bound the star rating a participant can give
const (
	MinRating = 1
	MaxRating = 5
)

// Prize is a reward owned by a commerce
type Prize struct {
	ID           uuid.UUID `json:"id"`
	CommerceID   uuid.UUID `json:"commerce_id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	Value        *float64  `json:"value,omitempty"`
	ImageURL     *string   `json:"image_url,omitempty"`
	Stock        *int      `json:"stock,omitempty"` // nil means unlimited
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	Color        string    `json:"color"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasUnlimitedStock reports whether the prize never runs out
func (p Prize) HasUnlimitedStock() bool {
	return p.Stock == nil
}

// InStock reports whether at least one unit can still be awarded
func (p Prize) InStock() bool {
	return p.Stock == nil || *p.Stock > 0
}

// Eligible reports whether the prize can take part in a draw
func (p Prize) Eligible() bool {
	return p.IsActive && p.InStock()
}

// StarPercents holds one percentage per star rating
type StarPercents struct {
	Star1 float64 `json:"star1"`
	Star2 float64 `json:"star2"`
	Star3 float64 `json:"star3"`
	Star4 float64 `json:"star4"`
	Star5 float64 `json:"star5"`
}

// ForRating returns the percentage configured for a rating, 0 if out of range
func (s StarPercents) ForRating(rating int) float64 {
	switch rating {
	case 1:
		return s.Star1
	case 2:
		return s.Star2
	case 3:
		return s.Star3
	case 4:
		return s.Star4
	case 5:
		return s.Star5
	default:
		return 0
	}
}

// Probability is the odds configuration of a pool entry
type Probability struct {
	Mode         ProbabilityMode `json:"mode"`
	FixedPercent *float64        `json:"fixed_percent,omitempty"`
	StarPercents *StarPercents   `json:"star_percents,omitempty"`
}

// PoolEntry pairs a prize with its odds inside a prize pool
type PoolEntry struct {
	Prize       Prize       `json:"prize"`
	Probability Probability `json:"probability"`
}

// PrizePool is an ordered set of prizes with probabilities
type PrizePool struct {
	ID          uuid.UUID   `json:"id"`
	CommerceID  uuid.UUID   `json:"commerce_id"`
	Name        string      `json:"name"`
	Description *string     `json:"description,omitempty"`
	Entries     []PoolEntry `json:"entries"`
	IsActive    bool        `json:"is_active"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// PrizeSnapshot freezes prize display data at draw time
type PrizeSnapshot struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Value       *float64 `json:"value,omitempty"`
}

// Snapshot captures the prize fields shown on a claim
func (p Prize) Snapshot() PrizeSnapshot {
	return PrizeSnapshot{
		Name:        p.Name,
		Description: p.Description,
		Value:       p.Value,
	}
}
