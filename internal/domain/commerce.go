package domain

import (
	"time"

	"github.com/google/uuid"
)

// Commerce is a tenant running campaigns
type Commerce struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Slug              string    `json:"slug"`
	Description       *string   `json:"description,omitempty"`
	GoogleBusinessURL *string   `json:"google_business_url,omitempty"`
	LogoURL           *string   `json:"logo_url,omitempty"`
	PrimaryColor      string    `json:"primary_color"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// PublicCommerce is the subset of commerce data shown to participants
type PublicCommerce struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Slug              string    `json:"slug"`
	GoogleBusinessURL *string   `json:"google_business_url,omitempty"`
	LogoURL           *string   `json:"logo_url,omitempty"`
	PrimaryColor      string    `json:"primary_color"`
}

// Public strips internal fields from the commerce
func (c Commerce) Public() PublicCommerce {
	return PublicCommerce{
		ID:                c.ID,
		Name:              c.Name,
		Slug:              c.Slug,
		GoogleBusinessURL: c.GoogleBusinessURL,
		LogoURL:           c.LogoURL,
		PrimaryColor:      c.PrimaryColor,
	}
}

// PublicCampaign is the landing-page view of a campaign
type PublicCampaign struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description,omitempty"`
	StartDate   time.Time      `json:"start_date"`
	EndDate     time.Time      `json:"end_date"`
	IsOpen      bool           `json:"is_open"`
	Commerce    PublicCommerce `json:"commerce"`
	Prizes      []PoolEntry    `json:"prizes"`
}
