package claim

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/ReviewLottery_Go/internal/domain"
)

// MockRepository implements repository.Claim
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetClaimByCode(ctx context.Context, code string) (*domain.Claim, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Claim), args.Error(1)
}

func (m *MockRepository) GetClaimByID(ctx context.Context, id uuid.UUID) (*domain.Claim, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Claim), args.Error(1)
}

func (m *MockRepository) ListClaimsByEmail(ctx context.Context, email string, commerceID *uuid.UUID) ([]domain.Claim, error) {
	args := m.Called(ctx, email, commerceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Claim), args.Error(1)
}

func (m *MockRepository) MarkClaimed(ctx context.Context, id uuid.UUID, claimedBy string, at time.Time) (bool, error) {
	args := m.Called(ctx, id, claimedBy, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) MarkExpired(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	args := m.Called(ctx, id, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) AnonymizeClaim(ctx context.Context, id uuid.UUID, redacted string) (bool, error) {
	args := m.Called(ctx, id, redacted)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ExpireOverdueClaims(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}
