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
	"github.com/osse101/ReviewLottery_Go/internal/repository"
)

const queryGetParticipation = `
	SELECT id, campaign_id, commerce_id, participant_email, participant_name, rating_given,
	       prize_won_id, spin_angle, spin_segment, spin_visual_segment, created_at
	FROM participations
	WHERE campaign_id = $1 AND participant_email = $2`

const queryClaimCodeExists = `SELECT EXISTS (SELECT 1 FROM claims WHERE claim_code = $1)`

const queryFindDangling = `
	SELECT p.id, p.campaign_id, p.participant_email, p.prize_won_id, p.created_at
	FROM participations p
	LEFT JOIN claims c ON c.participation_id = p.id
	WHERE c.id IS NULL AND p.created_at < $1
	ORDER BY p.created_at
	LIMIT $2`

const queryInsertParticipation = `
	INSERT INTO participations (
		id, campaign_id, commerce_id, participant_email, participant_name, rating_given,
		prize_won_id, spin_angle, spin_segment, spin_visual_segment, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

// Conditional decrement: a limited prize only loses a unit it still has.
const queryDecrementStock = `
	UPDATE prizes
	SET stock = GREATEST(stock - 1, 0), updated_at = NOW()
	WHERE id = $1 AND stock IS NOT NULL AND stock > 0`

const queryInsertClaim = `
	INSERT INTO claims (
		id, participation_id, campaign_id, commerce_id, prize_id, participant_email,
		participant_name, claim_code, status, expires_at, prize_name, prize_description,
		prize_value, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)`

const queryIncrementCampaignCounters = `
	UPDATE campaigns
	SET total_reviews = total_reviews + 1, total_winners = total_winners + 1, updated_at = NOW()
	WHERE id = $1`

// LedgerRepository implements repository.Participation for PostgreSQL
type LedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// GetCampaign retrieves a campaign by ID, nil when absent
func (r *LedgerRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return getCampaign(ctx, r.db, id)
}

// GetPoolEntries returns the pool's entries in configured order
func (r *LedgerRepository) GetPoolEntries(ctx context.Context, poolID uuid.UUID) ([]domain.PoolEntry, error) {
	return getPoolEntries(ctx, r.db, poolID)
}

// GetParticipation finds the participation of an email in a campaign, nil when absent
func (r *LedgerRepository) GetParticipation(ctx context.Context, campaignID uuid.UUID, email string) (*domain.Participation, error) {
	var p domain.Participation
	err := r.db.QueryRow(ctx, queryGetParticipation, campaignID, email).Scan(
		&p.ID, &p.CampaignID, &p.CommerceID, &p.ParticipantEmail, &p.ParticipantName,
		&p.RatingGiven, &p.PrizeWonID,
		&p.SpinResult.Angle, &p.SpinResult.Segment, &p.SpinResult.VisualSegment,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrContextGetParticipation, err)
	}
	return &p, nil
}

// ClaimCodeExists reports whether a claim code is already stored
func (r *LedgerRepository) ClaimCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, queryClaimCodeExists, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", ErrContextCheckClaimCode, err)
	}
	return exists, nil
}

// FindDanglingParticipations lists participations created before olderThan that have no claim
func (r *LedgerRepository) FindDanglingParticipations(ctx context.Context, olderThan time.Time, limit int) ([]domain.DanglingParticipation, error) {
	rows, err := r.db.Query(ctx, queryFindDangling, olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFindDangling, err)
	}

	dangling, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DanglingParticipation, error) {
		var d domain.DanglingParticipation
		err := row.Scan(&d.ParticipationID, &d.CampaignID, &d.ParticipantEmail, &d.PrizeWonID, &d.CreatedAt)
		return d, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFindDangling, err)
	}
	return dangling, nil
}

// BeginLedgerTx starts a transaction for writing one draw
func (r *LedgerRepository) BeginLedgerTx(ctx context.Context) (repository.LedgerTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextBeginTx, err)
	}
	return &ledgerTx{tx: tx}, nil
}

// ledgerTx implements repository.LedgerTx
type ledgerTx struct {
	tx pgx.Tx
}

func (t *ledgerTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *ledgerTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *ledgerTx) InsertParticipation(ctx context.Context, p *domain.Participation) error {
	_, err := t.tx.Exec(ctx, queryInsertParticipation,
		p.ID, p.CampaignID, p.CommerceID, p.ParticipantEmail, p.ParticipantName, p.RatingGiven,
		p.PrizeWonID, p.SpinResult.Angle, p.SpinResult.Segment, p.SpinResult.VisualSegment, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, ConstraintParticipationCampaignEmail) {
			return domain.ErrAlreadyParticipated
		}
		return fmt.Errorf("%s: %w", ErrContextInsertParticipation, err)
	}
	return nil
}

func (t *ledgerTx) DecrementStock(ctx context.Context, prizeID uuid.UUID) (bool, error) {
	tag, err := t.tx.Exec(ctx, queryDecrementStock, prizeID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrContextDecrementStock, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (t *ledgerTx) InsertClaim(ctx context.Context, c *domain.Claim) error {
	_, err := t.tx.Exec(ctx, queryInsertClaim,
		c.ID, c.ParticipationID, c.CampaignID, c.CommerceID, c.PrizeID, c.ParticipantEmail,
		c.ParticipantName, c.ClaimCode, string(c.Status), c.ExpiresAt,
		c.PrizeSnapshot.Name, c.PrizeSnapshot.Description, c.PrizeSnapshot.Value, c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, ConstraintClaimCode) {
			return domain.ErrClaimCodeConflict
		}
		return fmt.Errorf("%s: %w", ErrContextInsertClaim, err)
	}
	return nil
}

func (t *ledgerTx) IncrementCampaignCounters(ctx context.Context, campaignID uuid.UUID) error {
	if _, err := t.tx.Exec(ctx, queryIncrementCampaignCounters, campaignID); err != nil {
		return fmt.Errorf("%s: %w", ErrContextIncrementCounters, err)
	}
	return nil
}
