package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ReviewLottery_Go/internal/domain"
)

const claimColumns = `
	id, participation_id, campaign_id, commerce_id, prize_id, participant_email,
	participant_name, claim_code, status, expires_at, claimed_at, claimed_by,
	prize_name, prize_description, prize_value, created_at`

const queryGetClaimByCode = `SELECT ` + claimColumns + ` FROM claims WHERE claim_code = $1`

const queryGetClaimByID = `SELECT ` + claimColumns + ` FROM claims WHERE id = $1`

const queryListClaimsByEmail = `SELECT ` + claimColumns + ` FROM claims
	WHERE participant_email = $1
	  AND status IN ('pending', 'claimed')
	  AND ($2::uuid IS NULL OR commerce_id = $2)
	ORDER BY created_at DESC`

const queryMarkClaimed = `
	UPDATE claims
	SET status = 'claimed', claimed_at = $2, claimed_by = $3, updated_at = NOW()
	WHERE id = $1 AND status = 'pending' AND expires_at >= $2`

const queryMarkExpired = `
	UPDATE claims
	SET status = 'expired', updated_at = NOW()
	WHERE id = $1 AND status = 'pending' AND expires_at < $2`

const queryAnonymizeClaim = `
	UPDATE claims
	SET participant_name = $2, participant_email = $2, updated_at = NOW()
	WHERE id = $1 AND status = 'claimed'`

const queryExpireOverdueClaims = `
	UPDATE claims
	SET status = 'expired', updated_at = NOW()
	WHERE status = 'pending' AND expires_at < $1`

// ClaimRepository implements repository.Claim for PostgreSQL
type ClaimRepository struct {
	db *pgxpool.Pool
}

// NewClaimRepository creates a new ClaimRepository
func NewClaimRepository(db *pgxpool.Pool) *ClaimRepository {
	return &ClaimRepository{db: db}
}

// GetClaimByCode retrieves a claim by its exact stored code, nil when absent
func (r *ClaimRepository) GetClaimByCode(ctx context.Context, code string) (*domain.Claim, error) {
	return r.getOne(ctx, queryGetClaimByCode, code)
}

// GetClaimByID retrieves a claim by ID, nil when absent
func (r *ClaimRepository) GetClaimByID(ctx context.Context, id uuid.UUID) (*domain.Claim, error) {
	return r.getOne(ctx, queryGetClaimByID, id)
}

func (r *ClaimRepository) getOne(ctx context.Context, query string, arg any) (*domain.Claim, error) {
	c, err := scanClaim(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrContextGetClaim, err)
	}
	return c, nil
}

// ListClaimsByEmail returns pending and claimed claims of a participant, newest first
func (r *ClaimRepository) ListClaimsByEmail(ctx context.Context, email string, commerceID *uuid.UUID) ([]domain.Claim, error) {
	rows, err := r.db.Query(ctx, queryListClaimsByEmail, email, commerceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListClaims, err)
	}

	claims, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Claim, error) {
		c, err := scanClaim(row)
		if err != nil {
			return domain.Claim{}, err
		}
		return *c, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListClaims, err)
	}
	return claims, nil
}

// MarkClaimed redeems a pending claim that has not expired at the given instant
func (r *ClaimRepository) MarkClaimed(ctx context.Context, id uuid.UUID, claimedBy string, at time.Time) (bool, error) {
	return r.exec(ctx, queryMarkClaimed, id, at, claimedBy)
}

// MarkExpired persists the lazy pending to expired transition
func (r *ClaimRepository) MarkExpired(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	return r.exec(ctx, queryMarkExpired, id, now)
}

// AnonymizeClaim replaces participant data of a claimed claim with a redaction marker
func (r *ClaimRepository) AnonymizeClaim(ctx context.Context, id uuid.UUID, redacted string) (bool, error) {
	return r.exec(ctx, queryAnonymizeClaim, id, redacted)
}

// ExpireOverdueClaims marks every overdue pending claim as expired
func (r *ClaimRepository) ExpireOverdueClaims(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, queryExpireOverdueClaims, now)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextExpireClaims, err)
	}
	return tag.RowsAffected(), nil
}

func (r *ClaimRepository) exec(ctx context.Context, query string, args ...any) (bool, error) {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrContextUpdateClaim, err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanClaim(row pgx.Row) (*domain.Claim, error) {
	var c domain.Claim
	var status string
	err := row.Scan(
		&c.ID, &c.ParticipationID, &c.CampaignID, &c.CommerceID, &c.PrizeID, &c.ParticipantEmail,
		&c.ParticipantName, &c.ClaimCode, &status, &c.ExpiresAt, &c.ClaimedAt, &c.ClaimedBy,
		&c.PrizeSnapshot.Name, &c.PrizeSnapshot.Description, &c.PrizeSnapshot.Value, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Status = domain.ClaimStatus(status)
	return &c, nil
}
