package campaign

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/ReviewLottery_Go/internal/domain"
	"github.com/osse101/ReviewLottery_Go/internal/event"
	"github.com/osse101/ReviewLottery_Go/internal/logger"
	"github.com/osse101/ReviewLottery_Go/internal/lottery"
	"github.com/osse101/ReviewLottery_Go/internal/repository"
)

// Service is the read side of campaigns and prize pools
type Service interface {
	GetPublicCampaign(ctx context.Context, id uuid.UUID) (*domain.PublicCampaign, error)
	RecordScan(ctx context.Context, id uuid.UUID) error
	GetPoolSummary(ctx context.Context, poolID uuid.UUID) (*domain.PoolSummary, error)
	GetStats(ctx context.Context, commerceID *uuid.UUID) (*domain.DashboardStats, error)
	Invalidate(id uuid.UUID)
}

type service struct {
	repo      repository.Campaign
	publisher event.Bus
	cache     *publicCache
	now       func() time.Time
}

// NewService creates a campaign service with a public-view cache of the given size and TTL.
// Committed draws change prize stock, so the service drops the campaign's cached view on each one.
func NewService(repo repository.Campaign, publisher event.Bus, cacheSize int, cacheTTL time.Duration) Service {
	s := &service{
		repo:      repo,
		publisher: publisher,
		cache:     newPublicCache(cacheSize, cacheTTL),
		now:       time.Now,
	}
	if publisher != nil {
		publisher.Subscribe(event.DrawCompleted, s.handleDrawCompleted)
	}
	return s
}

func (s *service) handleDrawCompleted(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.DrawCompletedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	if id, err := uuid.Parse(p.CampaignID); err == nil {
		s.cache.Invalidate(id)
	}
	return nil
}

// GetPublicCampaign returns the landing-page view: campaign, commerce branding and
// the active prizes with their odds in wheel order
func (s *service) GetPublicCampaign(ctx context.Context, id uuid.UUID) (*domain.PublicCampaign, error) {
	now := s.now()
	if view, ok := s.cache.Get(id, now); ok {
		logger.FromContext(ctx).Debug(LogMsgPublicCampaignCacheHit, "campaign_id", id)
		return view, nil
	}

	c, err := s.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetCampaignFailed, err)
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}

	commerce, err := s.repo.GetCommerce(ctx, c.CommerceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetCommerceFailed, err)
	}
	if commerce == nil {
		logger.FromContext(ctx).Error(LogMsgCommerceMissing, "campaign_id", id, "commerce_id", c.CommerceID)
		return nil, domain.ErrCampaignNotFound
	}

	pool, err := s.repo.GetPrizePool(ctx, c.PrizePoolID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetPrizePoolFailed, err)
	}

	prizes := []domain.PoolEntry{}
	if pool != nil {
		for _, e := range pool.Entries {
			if e.Prize.IsActive {
				prizes = append(prizes, e)
			}
		}
	}

	view := domain.PublicCampaign{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		IsOpen:      c.IsOpen(now),
		Commerce:    commerce.Public(),
		Prizes:      prizes,
	}
	s.cache.Set(id, view, c.IsActive)
	return &view, nil
}

// RecordScan bumps the informational scan counter
func (s *service) RecordScan(ctx context.Context, id uuid.UUID) error {
	ok, err := s.repo.IncrementScans(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextIncrementScans, err)
	}
	if !ok {
		return domain.ErrCampaignNotFound
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event.NewCampaignScannedEvent(id.String())); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "error", err)
		}
	}
	return nil
}

// GetPoolSummary reports whether a pool's odds add up to 100
func (s *service) GetPoolSummary(ctx context.Context, poolID uuid.UUID) (*domain.PoolSummary, error) {
	pool, err := s.repo.GetPrizePool(ctx, poolID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetPrizePoolFailed, err)
	}
	if pool == nil {
		return nil, domain.ErrPrizePoolNotFound
	}
	summary := lottery.Summarize(pool.ID.String(), pool.Entries)
	return &summary, nil
}

// GetStats returns dashboard counters, optionally scoped to one commerce
func (s *service) GetStats(ctx context.Context, commerceID *uuid.UUID) (*domain.DashboardStats, error) {
	stats, err := s.repo.GetDashboardStats(ctx, commerceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetStatsFailed, err)
	}
	return stats, nil
}

// Invalidate drops a cached public view after the campaign or its pool changes
func (s *service) Invalidate(id uuid.UUID) {
	s.cache.Invalidate(id)
}
