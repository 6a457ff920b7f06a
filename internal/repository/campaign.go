package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/ReviewLottery_Go/internal/domain"
)

// Campaign defines the data access required by the campaign read side
type Campaign interface {
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	GetCommerce(ctx context.Context, id uuid.UUID) (*domain.Commerce, error)
	GetPrizePool(ctx context.Context, id uuid.UUID) (*domain.PrizePool, error)
	IncrementScans(ctx context.Context, campaignID uuid.UUID) (bool, error)
	GetDashboardStats(ctx context.Context, commerceID *uuid.UUID) (*domain.DashboardStats, error)
}

// Catalog creates the configuration records a campaign depends on
type Catalog interface {
	CreateCommerce(ctx context.Context, c *domain.Commerce) error
	CreatePrize(ctx context.Context, p *domain.Prize) error
	CreatePrizePool(ctx context.Context, pool *domain.PrizePool) error
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	GetCommerceBySlug(ctx context.Context, slug string) (*domain.Commerce, error)
}
