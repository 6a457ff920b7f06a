package worker

import (
	"context"

	"github.com/osse101/ReviewLottery_Go/internal/logger"
)

// ClaimExpirer moves overdue pending claims to expired
type ClaimExpirer interface {
	ExpireOverdue(ctx context.Context) (int64, error)
}

// ClaimExpiryJob persists lazy expiry in bulk. Redemption never depends on it.
type ClaimExpiryJob struct {
	claims ClaimExpirer
}

func NewClaimExpiryJob(claims ClaimExpirer) *ClaimExpiryJob {
	return &ClaimExpiryJob{claims: claims}
}

func (j *ClaimExpiryJob) Name() string { return JobNameClaimExpiry }

func (j *ClaimExpiryJob) Process(ctx context.Context) error {
	n, err := j.claims.ExpireOverdue(ctx)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgClaimSweepCompleted, "expired", n)
	return nil
}
