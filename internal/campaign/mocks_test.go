package campaign

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/ReviewLottery_Go/internal/domain"
)

// MockRepository implements repository.Campaign
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Campaign), args.Error(1)
}

func (m *MockRepository) GetCommerce(ctx context.Context, id uuid.UUID) (*domain.Commerce, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Commerce), args.Error(1)
}

func (m *MockRepository) GetPrizePool(ctx context.Context, id uuid.UUID) (*domain.PrizePool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PrizePool), args.Error(1)
}

func (m *MockRepository) IncrementScans(ctx context.Context, campaignID uuid.UUID) (bool, error) {
	args := m.Called(ctx, campaignID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) GetDashboardStats(ctx context.Context, commerceID *uuid.UUID) (*domain.DashboardStats, error) {
	args := m.Called(ctx, commerceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}
