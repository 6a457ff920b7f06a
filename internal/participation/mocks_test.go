package participation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/ReviewLottery_Go/internal/domain"
	"github.com/osse101/ReviewLottery_Go/internal/repository"
)

// MockRepository implements repository.Participation
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

func (m *MockRepository) GetPoolEntries(ctx context.Context, poolID uuid.UUID) ([]domain.PoolEntry, error) {
	args := m.Called(ctx, poolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PoolEntry), args.Error(1)
}

func (m *MockRepository) GetParticipation(ctx context.Context, campaignID uuid.UUID, email string) (*domain.Participation, error) {
	args := m.Called(ctx, campaignID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participation), args.Error(1)
}

func (m *MockRepository) ClaimCodeExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) FindDanglingParticipations(ctx context.Context, olderThan time.Time, limit int) ([]domain.DanglingParticipation, error) {
	args := m.Called(ctx, olderThan, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DanglingParticipation), args.Error(1)
}

func (m *MockRepository) BeginLedgerTx(ctx context.Context) (repository.LedgerTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.LedgerTx), args.Error(1)
}

// MockLedgerTx implements repository.LedgerTx
type MockLedgerTx struct {
	mock.Mock
}

func (m *MockLedgerTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedgerTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedgerTx) InsertParticipation(ctx context.Context, p *domain.Participation) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockLedgerTx) DecrementStock(ctx context.Context, prizeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, prizeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerTx) InsertClaim(ctx context.Context, c *domain.Claim) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockLedgerTx) IncrementCampaignCounters(ctx context.Context, campaignID uuid.UUID) error {
	args := m.Called(ctx, campaignID)
	return args.Error(0)
}
