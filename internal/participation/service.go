package participation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/ReviewLottery_Go/internal/claimcode"
	"github.com/osse101/ReviewLottery_Go/internal/domain"
	"github.com/osse101/ReviewLottery_Go/internal/event"
	"github.com/osse101/ReviewLottery_Go/internal/logger"
	"github.com/osse101/ReviewLottery_Go/internal/lottery"
	"github.com/osse101/ReviewLottery_Go/internal/repository"
)

// Service runs the lottery for review participants
type Service interface {
	Spin(ctx context.Context, req SpinRequest) (*SpinResult, error)
	FindDangling(ctx context.Context, olderThan time.Time) ([]domain.DanglingParticipation, error)
}

// SpinRequest is one participant's rating and draw request
type SpinRequest struct {
	CampaignID       uuid.UUID `json:"campaign_id"`
	ParticipantEmail string    `json:"participant_email"`
	ParticipantName  string    `json:"participant_name"`
	RatingGiven      int       `json:"rating_given"`
}

// SpinResult is what the participant sees after a draw
type SpinResult struct {
	ParticipationID    uuid.UUID `json:"participation_id"`
	PrizeID            uuid.UUID `json:"prize_id"`
	PrizeName          string    `json:"prize_name"`
	PrizeDescription   *string   `json:"prize_description,omitempty"`
	PrizeValue         *float64  `json:"prize_value,omitempty"`
	PrizeImageURL      *string   `json:"prize_image_url,omitempty"`
	PrizeColor         string    `json:"prize_color"`
	AngleDegrees       float64   `json:"angle_degrees"`
	Segment            int       `json:"segment"`
	VisualSegmentIndex int       `json:"visual_segment_index"`
	ClaimCode          string    `json:"claim_code"`
	ExpiresAt          time.Time `json:"expires_at"`
}

type service struct {
	repo      repository.Participation
	engine    *lottery.Engine
	codes     *claimcode.Generator
	publisher event.Bus
	now       func() time.Time
}

// NewService creates a participation service. A nil publisher disables events.
func NewService(repo repository.Participation, engine *lottery.Engine, codes *claimcode.Generator, publisher event.Bus) Service {
	if engine == nil {
		engine = lottery.NewEngine(nil)
	}
	if codes == nil {
		codes = claimcode.NewGenerator()
	}
	return &service{
		repo:      repo,
		engine:    engine,
		codes:     codes,
		publisher: publisher,
		now:       time.Now,
	}
}

// Spin validates the request, draws one prize and records participation, stock
// and claim in a single transaction. Nothing is written when any step fails.
func (s *service) Spin(ctx context.Context, req SpinRequest) (*SpinResult, error) {
	log := logger.FromContext(ctx)

	if req.RatingGiven < domain.MinRating || req.RatingGiven > domain.MaxRating {
		return nil, domain.ErrInvalidRating
	}
	email := domain.NormalizeEmail(req.ParticipantEmail)
	if email == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrContextEmailRequired)
	}

	log.Info(LogMsgSpinStarted, "campaign_id", req.CampaignID, "rating", req.RatingGiven)

	// A repeated attempt always reports the first draw, even once the campaign has closed
	prior, err := s.repo.GetParticipation(ctx, req.CampaignID, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextCheckParticipation, err)
	}
	if prior != nil {
		log.Info(LogMsgAlreadyParticipated, "campaign_id", req.CampaignID)
		return nil, domain.ErrAlreadyParticipated
	}

	campaign, err := s.repo.GetCampaign(ctx, req.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetCampaignFailed, err)
	}
	if campaign == nil {
		return nil, domain.ErrCampaignNotFound
	}
	now := s.now()
	if !campaign.IsOpen(now) {
		return nil, domain.ErrCampaignInactive
	}

	entries, err := s.repo.GetPoolEntries(ctx, campaign.PrizePoolID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetPoolEntriesFailed, err)
	}

	outcome, err := s.engine.Spin(entries, req.RatingGiven)
	if err != nil {
		if errors.Is(err, domain.ErrZeroProbabilityMass) {
			log.Error(LogMsgZeroProbabilityMass, "campaign_id", campaign.ID, "prize_pool_id", campaign.PrizePoolID)
			s.publish(ctx, event.NewAnomalyEvent(event.AnomalyZeroProbabilityMass, campaign.ID.String(),
				fmt.Sprintf("prize pool %s has no positive weight for rating %d", campaign.PrizePoolID, req.RatingGiven)))
		}
		return nil, err
	}
	if outcome.StarFallback {
		log.Debug(LogMsgStarFallbackUsed, "campaign_id", campaign.ID, "prize_pool_id", campaign.PrizePoolID)
	}

	code, err := s.codes.GenerateUnique(ctx, s.repo.ClaimCodeExists)
	if err != nil {
		if errors.Is(err, domain.ErrClaimCodeExhausted) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrContextClaimCodeFailed, err)
	}

	prize := outcome.Entry.Prize
	participation := &domain.Participation{
		ID:               uuid.New(),
		CampaignID:       campaign.ID,
		CommerceID:       campaign.CommerceID,
		ParticipantEmail: email,
		ParticipantName:  req.ParticipantName,
		RatingGiven:      req.RatingGiven,
		PrizeWonID:       prize.ID,
		SpinResult:       outcome.SpinResult(),
		CreatedAt:        now,
	}
	claim := &domain.Claim{
		ID:               uuid.New(),
		ParticipationID:  participation.ID,
		CampaignID:       campaign.ID,
		CommerceID:       campaign.CommerceID,
		PrizeID:          prize.ID,
		ParticipantEmail: email,
		ParticipantName:  req.ParticipantName,
		ClaimCode:        code,
		Status:           domain.ClaimStatusPending,
		ExpiresAt:        campaign.ClaimExpiry(now),
		PrizeSnapshot:    prize.Snapshot(),
		CreatedAt:        now,
	}

	if err := s.record(ctx, participation, prize, claim); err != nil {
		return nil, err
	}

	log.Info(LogMsgSpinCompleted,
		"campaign_id", campaign.ID,
		"participation_id", participation.ID,
		"prize_id", prize.ID,
		"visual_segment", outcome.VisualSegment)

	s.publish(ctx, event.NewDrawCompletedEvent(event.DrawCompletedPayloadV1{
		CampaignID:    campaign.ID.String(),
		CommerceID:    campaign.CommerceID.String(),
		PrizeID:       prize.ID.String(),
		PrizeName:     prize.Name,
		Rating:        req.RatingGiven,
		VisualSegment: outcome.VisualSegment,
	}))

	return &SpinResult{
		ParticipationID:    participation.ID,
		PrizeID:            prize.ID,
		PrizeName:          prize.Name,
		PrizeDescription:   prize.Description,
		PrizeValue:         prize.Value,
		PrizeImageURL:      prize.ImageURL,
		PrizeColor:         prize.Color,
		AngleDegrees:       outcome.Angle,
		Segment:            outcome.LogicalSegment,
		VisualSegmentIndex: outcome.VisualSegment,
		ClaimCode:          code,
		ExpiresAt:          claim.ExpiresAt,
	}, nil
}

// record writes participation, stock and claim in that order
func (s *service) record(ctx context.Context, p *domain.Participation, prize domain.Prize, c *domain.Claim) error {
	tx, err := s.repo.BeginLedgerTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.InsertParticipation(ctx, p); err != nil {
		if errors.Is(err, domain.ErrAlreadyParticipated) {
			return err
		}
		return fmt.Errorf("%s: %w", ErrContextInsertParticipation, err)
	}

	if !prize.HasUnlimitedStock() {
		taken, err := tx.DecrementStock(ctx, prize.ID)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextDecrementStockFailed, err)
		}
		if !taken {
			logger.FromContext(ctx).Warn(LogMsgPrizeOutOfStock, "prize_id", prize.ID)
			return domain.ErrPrizeOutOfStock
		}
	}

	if err := tx.InsertClaim(ctx, c); err != nil {
		if errors.Is(err, domain.ErrClaimCodeConflict) {
			return err
		}
		return fmt.Errorf("%s: %w", ErrContextInsertClaimFailed, err)
	}

	if err := tx.IncrementCampaignCounters(ctx, p.CampaignID); err != nil {
		return fmt.Errorf("%s: %w", ErrContextIncrementCounters, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrContextCommitFailed, err)
	}
	return nil
}

// FindDangling lists participations older than the cutoff that have no claim.
// They are reported for an operator; the draw is never repeated.
func (s *service) FindDangling(ctx context.Context, olderThan time.Time) ([]domain.DanglingParticipation, error) {
	rows, err := s.repo.FindDanglingParticipations(ctx, olderThan, DefaultDanglingLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFindDanglingFailed, err)
	}
	if len(rows) > 0 {
		logger.FromContext(ctx).Warn(LogMsgDanglingParticipants, "count", len(rows))
	}
	return rows, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
