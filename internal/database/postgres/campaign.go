package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ReviewLottery_Go/internal/domain"
)

const campaignColumns = `
	id, commerce_id, name, description, start_date, end_date, is_active, prize_pool_id,
	expiration_days, max_participations, total_scans, total_reviews, total_winners,
	created_at, updated_at`

const queryGetCampaign = `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`

const queryGetCommerce = `
	SELECT id, name, slug, description, google_business_url, logo_url, primary_color,
	       is_active, created_at, updated_at
	FROM commerces WHERE id = $1`

const queryGetPrizePool = `
	SELECT id, commerce_id, name, description, is_active, created_at, updated_at
	FROM prize_pools WHERE id = $1`

const queryGetPoolEntries = `
	SELECT p.id, p.commerce_id, p.name, p.description, p.value, p.image_url, p.stock,
	       p.is_active, p.display_order, p.color, p.created_at, p.updated_at,
	       e.probability_mode, e.fixed_percent, e.star1, e.star2, e.star3, e.star4, e.star5
	FROM prize_pool_entries e
	JOIN prizes p ON p.id = e.prize_id
	WHERE e.pool_id = $1
	ORDER BY e.position, p.display_order`

const queryIncrementScans = `
	UPDATE campaigns SET total_scans = total_scans + 1, updated_at = NOW()
	WHERE id = $1`

const queryDashboardStats = `
	SELECT
		(SELECT COUNT(*) FROM participations WHERE $1::uuid IS NULL OR commerce_id = $1),
		(SELECT COALESCE(AVG(rating_given), 0)::float8 FROM participations WHERE $1::uuid IS NULL OR commerce_id = $1),
		COUNT(*),
		COUNT(*) FILTER (WHERE status = 'claimed'),
		COUNT(*) FILTER (WHERE status = 'pending' AND expires_at >= NOW())
	FROM claims
	WHERE $1::uuid IS NULL OR commerce_id = $1`

// CampaignRepository implements repository.Campaign for PostgreSQL
type CampaignRepository struct {
	db *pgxpool.Pool
}

// NewCampaignRepository creates a new CampaignRepository
func NewCampaignRepository(db *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// GetCampaign retrieves a campaign by ID, nil when absent
func (r *CampaignRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return getCampaign(ctx, r.db, id)
}

// GetCommerce retrieves a commerce by ID, nil when absent
func (r *CampaignRepository) GetCommerce(ctx context.Context, id uuid.UUID) (*domain.Commerce, error) {
	c, err := scanCommerce(r.db.QueryRow(ctx, queryGetCommerce, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrContextGetCommerce, err)
	}
	return c, nil
}

// GetPrizePool retrieves a pool with its ordered entries, nil when absent
func (r *CampaignRepository) GetPrizePool(ctx context.Context, id uuid.UUID) (*domain.PrizePool, error) {
	var pool domain.PrizePool
	err := r.db.QueryRow(ctx, queryGetPrizePool, id).Scan(
		&pool.ID, &pool.CommerceID, &pool.Name, &pool.Description,
		&pool.IsActive, &pool.CreatedAt, &pool.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrContextGetPrizePool, err)
	}

	pool.Entries, err = getPoolEntries(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return &pool, nil
}

// IncrementScans bumps the scan counter; false when the campaign does not exist
func (r *CampaignRepository) IncrementScans(ctx context.Context, campaignID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, queryIncrementScans, campaignID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrContextIncrementScans, err)
	}
	return tag.RowsAffected() == 1, nil
}

// GetDashboardStats aggregates participation and claim counts, optionally for one commerce
func (r *CampaignRepository) GetDashboardStats(ctx context.Context, commerceID *uuid.UUID) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	err := r.db.QueryRow(ctx, queryDashboardStats, commerceID).Scan(
		&stats.TotalParticipations,
		&stats.AverageRating,
		&stats.TotalWinners,
		&stats.TotalClaimed,
		&stats.TotalPending,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetStats, err)
	}
	return &stats, nil
}

func getCampaign(ctx context.Context, q querier, id uuid.UUID) (*domain.Campaign, error) {
	var c domain.Campaign
	err := q.QueryRow(ctx, queryGetCampaign, id).Scan(
		&c.ID, &c.CommerceID, &c.Name, &c.Description, &c.StartDate, &c.EndDate,
		&c.IsActive, &c.PrizePoolID,
		&c.Settings.ExpirationDays, &c.Settings.MaxParticipations,
		&c.Stats.TotalScans, &c.Stats.TotalReviews, &c.Stats.TotalWinners,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrContextGetCampaign, err)
	}
	return &c, nil
}

func scanCommerce(row pgx.Row) (*domain.Commerce, error) {
	var c domain.Commerce
	err := row.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.GoogleBusinessURL, &c.LogoURL,
		&c.PrimaryColor, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func getPoolEntries(ctx context.Context, q querier, poolID uuid.UUID) ([]domain.PoolEntry, error) {
	rows, err := q.Query(ctx, queryGetPoolEntries, poolID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetPoolEntries, err)
	}
	defer rows.Close()

	var entries []domain.PoolEntry
	for rows.Next() {
		var e domain.PoolEntry
		var mode string
		var fixed *float64
		var star1, star2, star3, star4, star5 *float64
		if err := rows.Scan(
			&e.Prize.ID, &e.Prize.CommerceID, &e.Prize.Name, &e.Prize.Description, &e.Prize.Value,
			&e.Prize.ImageURL, &e.Prize.Stock, &e.Prize.IsActive, &e.Prize.DisplayOrder,
			&e.Prize.Color, &e.Prize.CreatedAt, &e.Prize.UpdatedAt,
			&mode, &fixed, &star1, &star2, &star3, &star4, &star5,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextGetPoolEntries, err)
		}

		e.Probability.Mode = domain.ProbabilityMode(mode)
		switch e.Probability.Mode {
		case domain.ProbabilityModeFixed:
			e.Probability.FixedPercent = fixed
		case domain.ProbabilityModeStarBased:
			e.Probability.StarPercents = &domain.StarPercents{
				Star1: deref(star1),
				Star2: deref(star2),
				Star3: deref(star3),
				Star4: deref(star4),
				Star5: deref(star5),
			}
		default:
			return nil, fmt.Errorf("%s: %q", ErrContextUnknownProbability, mode)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetPoolEntries, err)
	}
	return entries, nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
