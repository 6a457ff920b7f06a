package claim

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/ReviewLottery_Go/internal/claimcode"
	"github.com/osse101/ReviewLottery_Go/internal/domain"
	"github.com/osse101/ReviewLottery_Go/internal/event"
	"github.com/osse101/ReviewLottery_Go/internal/logger"
	"github.com/osse101/ReviewLottery_Go/internal/repository"
)

// Service manages won prizes after the draw
type Service interface {
	Lookup(ctx context.Context, code string) (*domain.Claim, error)
	Redeem(ctx context.Context, code, redeemedBy string) (*domain.RedeemResult, error)
	Retrieve(ctx context.Context, email string, commerceID *uuid.UUID) ([]domain.ClaimView, error)
	Anonymize(ctx context.Context, claimID uuid.UUID, requestedBy string) (*domain.Claim, error)
	ExpireOverdue(ctx context.Context) (int64, error)
}

type service struct {
	repo      repository.Claim
	publisher event.Bus
	now       func() time.Time
}

// NewService creates a claim service. A nil publisher disables events.
func NewService(repo repository.Claim, publisher event.Bus) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

// Lookup finds a claim by code. Codes that cannot exist are reported as not found
// without touching the store. A pending claim past expiry comes back expired.
func (s *service) Lookup(ctx context.Context, code string) (*domain.Claim, error) {
	c, err := s.getByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	s.applyExpiry(ctx, c, s.now())
	return c, nil
}

// Redeem marks a pending claim as claimed. Already-claimed and expired claims
// are reported through the outcome rather than as errors.
func (s *service) Redeem(ctx context.Context, code, redeemedBy string) (*domain.RedeemResult, error) {
	redeemedBy = strings.TrimSpace(redeemedBy)
	if redeemedBy == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrContextRedeemerRequired)
	}

	c, err := s.getByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var outcome domain.RedeemOutcome
	switch c.EffectiveStatus(now) {
	case domain.ClaimStatusClaimed:
		outcome = domain.RedeemOutcomeAlreadyClaimed
	case domain.ClaimStatusExpired:
		s.applyExpiry(ctx, c, now)
		outcome = domain.RedeemOutcomeExpired
	default:
		ok, err := s.repo.MarkClaimed(ctx, c.ID, redeemedBy, now)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextMarkClaimedFailed, err)
		}
		if ok {
			c.Status = domain.ClaimStatusClaimed
			c.ClaimedAt = &now
			c.ClaimedBy = &redeemedBy
			outcome = domain.RedeemOutcomeRedeemed
			break
		}
		// Lost the compare-and-set: read back what won.
		if c, err = s.repo.GetClaimByID(ctx, c.ID); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextGetClaimFailed, err)
		}
		if c == nil {
			return nil, domain.ErrClaimNotFound
		}
		if c.Status == domain.ClaimStatusClaimed {
			outcome = domain.RedeemOutcomeAlreadyClaimed
		} else {
			s.applyExpiry(ctx, c, now)
			outcome = domain.RedeemOutcomeExpired
		}
	}

	logger.FromContext(ctx).Info(LogMsgClaimRedeemed,
		"claim_id", c.ID,
		"outcome", outcome,
		"redeemed_by", redeemedBy)
	s.publish(ctx, event.NewClaimRedeemedEvent(c.ID.String(), c.CampaignID.String(), string(outcome)))

	return &domain.RedeemResult{Outcome: outcome, Claim: c}, nil
}

// Retrieve lists a participant's pending and claimed claims, newest first
func (s *service) Retrieve(ctx context.Context, email string, commerceID *uuid.UUID) ([]domain.ClaimView, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrContextEmailRequired)
	}

	claims, err := s.repo.ListClaimsByEmail(ctx, email, commerceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListClaimsFailed, err)
	}

	now := s.now()
	views := make([]domain.ClaimView, 0, len(claims))
	for i := range claims {
		c := &claims[i]
		// Only claims the sweep already stored as expired are hidden
		if c.Status == domain.ClaimStatusExpired {
			continue
		}
		s.applyExpiry(ctx, c, now)
		views = append(views, domain.ClaimView{Claim: *c, IsExpired: c.IsExpired(now)})
	}
	if len(views) == 0 {
		return nil, domain.ErrClaimNotFound
	}
	return views, nil
}

// Anonymize removes participant data from a redeemed claim
func (s *service) Anonymize(ctx context.Context, claimID uuid.UUID, requestedBy string) (*domain.Claim, error) {
	c, err := s.repo.GetClaimByID(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetClaimFailed, err)
	}
	if c == nil {
		return nil, domain.ErrClaimNotFound
	}
	if c.Status != domain.ClaimStatusClaimed {
		return nil, domain.ErrClaimNotRedeemed
	}

	ok, err := s.repo.AnonymizeClaim(ctx, claimID, domain.RedactedValue)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextAnonymizeFailed, err)
	}
	if !ok {
		return nil, domain.ErrClaimNotRedeemed
	}

	c.ParticipantEmail = domain.RedactedValue
	c.ParticipantName = domain.RedactedValue
	logger.FromContext(ctx).Info(LogMsgClaimAnonymized, "claim_id", claimID, "requested_by", requestedBy)
	return c, nil
}

// ExpireOverdue persists the expired status for overdue pending claims.
// Reads never depend on it.
func (s *service) ExpireOverdue(ctx context.Context) (int64, error) {
	n, err := s.repo.ExpireOverdueClaims(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextExpireOverdueFailed, err)
	}
	if n > 0 {
		logger.FromContext(ctx).Info(LogMsgClaimsExpired, "count", n)
		s.publish(ctx, event.NewClaimsExpiredEvent(n))
	}
	return n, nil
}

func (s *service) getByCode(ctx context.Context, code string) (*domain.Claim, error) {
	code = claimcode.Normalize(code)
	if !claimcode.IsValidFormat(code) {
		return nil, domain.ErrClaimNotFound
	}
	c, err := s.repo.GetClaimByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetClaimFailed, err)
	}
	if c == nil {
		return nil, domain.ErrClaimNotFound
	}
	return c, nil
}

// applyExpiry flips an overdue pending claim to expired and writes it back best-effort
func (s *service) applyExpiry(ctx context.Context, c *domain.Claim, now time.Time) {
	if c.Status != domain.ClaimStatusPending || !c.IsExpired(now) {
		return
	}
	c.Status = domain.ClaimStatusExpired
	if _, err := s.repo.MarkExpired(ctx, c.ID, now); err != nil {
		logger.FromContext(ctx).Warn(LogMsgLazyExpireFailed, "claim_id", c.ID, "error", err)
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
