package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/ReviewLottery_Go/internal/domain"
)

// Participation defines the data access required by the participation ledger
type Participation interface {
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	GetPoolEntries(ctx context.Context, poolID uuid.UUID) ([]domain.PoolEntry, error)
	GetParticipation(ctx context.Context, campaignID uuid.UUID, email string) (*domain.Participation, error)
	ClaimCodeExists(ctx context.Context, code string) (bool, error)
	FindDanglingParticipations(ctx context.Context, olderThan time.Time, limit int) ([]domain.DanglingParticipation, error)

	// Transaction support
	BeginLedgerTx(ctx context.Context) (LedgerTx, error)
}

// LedgerTx writes one draw atomically, in the order participation, stock, claim
type LedgerTx interface {
	Tx // Commit, Rollback

	// InsertParticipation returns domain.ErrAlreadyParticipated on a duplicate (campaign, email)
	InsertParticipation(ctx context.Context, p *domain.Participation) error
	// DecrementStock takes one unit of a limited prize, floored at zero.
	// It returns false when no unit was left to take.
	DecrementStock(ctx context.Context, prizeID uuid.UUID) (bool, error)
	// InsertClaim returns domain.ErrClaimCodeConflict when the code is already stored
	InsertClaim(ctx context.Context, c *domain.Claim) error
	IncrementCampaignCounters(ctx context.Context, campaignID uuid.UUID) error
}
