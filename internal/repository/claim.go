package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/ReviewLottery_Go/internal/domain"
)

// Claim defines the data access required by the claim service.
// Getters return (nil, nil) when nothing matches.
type Claim interface {
	GetClaimByCode(ctx context.Context, code string) (*domain.Claim, error)
	GetClaimByID(ctx context.Context, id uuid.UUID) (*domain.Claim, error)
	ListClaimsByEmail(ctx context.Context, email string, commerceID *uuid.UUID) ([]domain.Claim, error)

	// MarkClaimed moves a pending, unexpired claim to claimed. False means the claim was not pending or had expired.
	MarkClaimed(ctx context.Context, id uuid.UUID, claimedBy string, at time.Time) (bool, error)
	// MarkExpired moves a pending claim past its expiry to expired
	MarkExpired(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
	// AnonymizeClaim redacts participant data of a claimed claim
	AnonymizeClaim(ctx context.Context, id uuid.UUID, redacted string) (bool, error)
	ExpireOverdueClaims(ctx context.Context, now time.Time) (int64, error)
}
