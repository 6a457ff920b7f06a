package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ReviewLottery_Go/internal/domain"
)

const queryInsertCommerce = `
	INSERT INTO commerces (id, name, slug, description, google_business_url, logo_url, primary_color, is_active)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING created_at, updated_at`

const queryGetCommerceBySlug = `
	SELECT id, name, slug, description, google_business_url, logo_url, primary_color,
	       is_active, created_at, updated_at
	FROM commerces WHERE slug = $1`

const queryInsertPrize = `
	INSERT INTO prizes (id, commerce_id, name, description, value, image_url, stock, is_active, display_order, color)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING created_at, updated_at`

const queryInsertPrizePool = `
	INSERT INTO prize_pools (id, commerce_id, name, description, is_active)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING created_at, updated_at`

const queryInsertPoolEntry = `
	INSERT INTO prize_pool_entries (pool_id, prize_id, position, probability_mode, fixed_percent, star1, star2, star3, star4, star5)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const queryInsertCampaign = `
	INSERT INTO campaigns (
		id, commerce_id, name, description, start_date, end_date, is_active, prize_pool_id,
		expiration_days, max_participations
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING created_at, updated_at`

// maxSlugAttempts bounds the numeric suffixes tried when a slug is taken
const maxSlugAttempts = 20

// CatalogRepository implements repository.Catalog for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// CreateCommerce inserts a commerce. An empty slug is derived from the name,
// and a numeric suffix is appended until it is unique.
func (r *CatalogRepository) CreateCommerce(ctx context.Context, c *domain.Commerce) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	base := c.Slug
	if base == "" {
		base = slug.Make(c.Name)
	}
	if c.PrimaryColor == "" {
		c.PrimaryColor = DefaultColor
	}

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		c.Slug = base
		if attempt > 0 {
			c.Slug = fmt.Sprintf("%s-%d", base, attempt+1)
		}

		err := r.db.QueryRow(ctx, queryInsertCommerce,
			c.ID, c.Name, c.Slug, c.Description, c.GoogleBusinessURL, c.LogoURL, c.PrimaryColor, c.IsActive,
		).Scan(&c.CreatedAt, &c.UpdatedAt)
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err, ConstraintCommerceSlug) {
			return fmt.Errorf("%s: %w", ErrContextCreateCommerce, err)
		}
	}
	return fmt.Errorf("%s: slug %q: %w", ErrContextCreateCommerce, base, domain.ErrInvalidInput)
}

// GetCommerceBySlug retrieves a commerce by slug, nil when absent
func (r *CatalogRepository) GetCommerceBySlug(ctx context.Context, s string) (*domain.Commerce, error) {
	c, err := scanCommerce(r.db.QueryRow(ctx, queryGetCommerceBySlug, s))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrContextGetCommerce, err)
	}
	return c, nil
}

// CreatePrize inserts a prize
func (r *CatalogRepository) CreatePrize(ctx context.Context, p *domain.Prize) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Color == "" {
		p.Color = DefaultColor
	}
	err := r.db.QueryRow(ctx, queryInsertPrize,
		p.ID, p.CommerceID, p.Name, p.Description, p.Value, p.ImageURL, p.Stock, p.IsActive, p.DisplayOrder, p.Color,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextCreatePrize, err)
	}
	return nil
}

// CreatePrizePool inserts a pool and its entries in one transaction, keeping entry order
func (r *CatalogRepository) CreatePrizePool(ctx context.Context, pool *domain.PrizePool) error {
	if pool.ID == uuid.Nil {
		pool.ID = uuid.New()
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextBeginTx, err)
	}
	defer SafeRollback(ctx, tx)

	err = tx.QueryRow(ctx, queryInsertPrizePool,
		pool.ID, pool.CommerceID, pool.Name, pool.Description, pool.IsActive,
	).Scan(&pool.CreatedAt, &pool.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextCreatePrizePool, err)
	}

	batch := &pgx.Batch{}
	for i, e := range pool.Entries {
		var stars [5]*float64
		if e.Probability.StarPercents != nil {
			for rating := domain.MinRating; rating <= domain.MaxRating; rating++ {
				v := e.Probability.StarPercents.ForRating(rating)
				stars[rating-1] = &v
			}
		}
		batch.Queue(queryInsertPoolEntry,
			pool.ID, e.Prize.ID, i, string(e.Probability.Mode), e.Probability.FixedPercent,
			stars[0], stars[1], stars[2], stars[3], stars[4],
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrContextCreatePrizePool, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrContextCreatePrizePool, err)
	}
	return nil
}

// CreateCampaign inserts a campaign
func (r *CatalogRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	err := r.db.QueryRow(ctx, queryInsertCampaign,
		c.ID, c.CommerceID, c.Name, c.Description, c.StartDate, c.EndDate, c.IsActive, c.PrizePoolID,
		c.ExpirationDays(), c.Settings.MaxParticipations,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextCreateCampaign, err)
	}
	c.Settings.ExpirationDays = c.ExpirationDays()
	return nil
}
