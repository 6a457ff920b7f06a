package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/ReviewLottery_Go/internal/domain"
	"github.com/osse101/ReviewLottery_Go/internal/participation"
)

type MockParticipationService struct {
	mock.Mock
}

func (m *MockParticipationService) Spin(ctx context.Context, req participation.SpinRequest) (*participation.SpinResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*participation.SpinResult), args.Error(1)
}

func (m *MockParticipationService) FindDangling(ctx context.Context, olderThan time.Time) ([]domain.DanglingParticipation, error) {
	args := m.Called(ctx, olderThan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DanglingParticipation), args.Error(1)
}

type MockClaimService struct {
	mock.Mock
}

func (m *MockClaimService) Lookup(ctx context.Context, code string) (*domain.Claim, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Claim), args.Error(1)
}

func (m *MockClaimService) Redeem(ctx context.Context, code, redeemedBy string) (*domain.RedeemResult, error) {
	args := m.Called(ctx, code, redeemedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RedeemResult), args.Error(1)
}

func (m *MockClaimService) Retrieve(ctx context.Context, email string, commerceID *uuid.UUID) ([]domain.ClaimView, error) {
	args := m.Called(ctx, email, commerceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClaimView), args.Error(1)
}

func (m *MockClaimService) Anonymize(ctx context.Context, claimID uuid.UUID, requestedBy string) (*domain.Claim, error) {
	args := m.Called(ctx, claimID, requestedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Claim), args.Error(1)
}

func (m *MockClaimService) ExpireOverdue(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockCampaignService struct {
	mock.Mock
}

func (m *MockCampaignService) GetPublicCampaign(ctx context.Context, id uuid.UUID) (*domain.PublicCampaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PublicCampaign), args.Error(1)
}

func (m *MockCampaignService) RecordScan(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCampaignService) GetPoolSummary(ctx context.Context, poolID uuid.UUID) (*domain.PoolSummary, error) {
	args := m.Called(ctx, poolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PoolSummary), args.Error(1)
}

func (m *MockCampaignService) GetStats(ctx context.Context, commerceID *uuid.UUID) (*domain.DashboardStats, error) {
	args := m.Called(ctx, commerceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockCampaignService) Invalidate(id uuid.UUID) {
	m.Called(id)
}
