package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/ReviewLottery_Go/internal/domain"
	"github.com/osse101/ReviewLottery_Go/internal/event"
	"github.com/osse101/ReviewLottery_Go/internal/logger"
)

// DanglingFinder lists participations that never got a claim
type DanglingFinder interface {
	FindDangling(ctx context.Context, olderThan time.Time) ([]domain.DanglingParticipation, error)
}

// ReconcileJob reports participations without a claim. The grace period keeps
// in-flight draws out of the report. Nothing is redrawn.
type ReconcileJob struct {
	finder    DanglingFinder
	publisher event.Bus
	grace     time.Duration
	now       func() time.Time
}

func NewReconcileJob(finder DanglingFinder, publisher event.Bus, grace time.Duration) *ReconcileJob {
	return &ReconcileJob{
		finder:    finder,
		publisher: publisher,
		grace:     grace,
		now:       time.Now,
	}
}

func (j *ReconcileJob) Name() string { return JobNameReconcile }

func (j *ReconcileJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)

	rows, err := j.finder.FindDangling(ctx, j.now().Add(-j.grace))
	if err != nil {
		return err
	}

	oldest := time.Time{}
	for _, row := range rows {
		log.Warn(LogMsgDanglingParticipation,
			"participation_id", row.ParticipationID,
			"campaign_id", row.CampaignID,
			"prize_id", row.PrizeWonID,
			"created_at", row.CreatedAt)
		if oldest.IsZero() || row.CreatedAt.Before(oldest) {
			oldest = row.CreatedAt
		}
	}
	log.Info(LogMsgReconcileCompleted, "dangling", len(rows))

	if len(rows) == 0 || j.publisher == nil {
		return nil
	}

	// One alert per run; the campaign field is left empty since rows may span campaigns
	detail := fmt.Sprintf(AnomalyDetailDangling, len(rows), oldest.UTC().Format(time.RFC3339))
	if err := j.publisher.Publish(ctx, event.NewAnomalyEvent(event.AnomalyDanglingParticipation, "", detail)); err != nil {
		log.Warn(LogMsgAnomalyPublishFailed, "error", err)
	}
	return nil
}
