package metrics

import (
	"errors"

	"github.com/osse101/ReviewLottery_Go/internal/domain"
)

// RejectionReason maps a failed spin to a low-cardinality label value
func RejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidRating):
		return ReasonInvalidRating
	case errors.Is(err, domain.ErrInvalidInput):
		return ReasonInvalidInput
	case errors.Is(err, domain.ErrCampaignNotFound):
		return ReasonCampaignNotFound
	case errors.Is(err, domain.ErrCampaignInactive):
		return ReasonCampaignInactive
	case errors.Is(err, domain.ErrAlreadyParticipated):
		return ReasonAlreadyParticipated
	case errors.Is(err, domain.ErrPrizeOutOfStock):
		return ReasonOutOfStock
	case errors.Is(err, domain.ErrNoPrizesAvailable):
		return ReasonNoPrizes
	case errors.Is(err, domain.ErrZeroProbabilityMass):
		return ReasonZeroProbability
	case errors.Is(err, domain.ErrClaimCodeExhausted), errors.Is(err, domain.ErrClaimCodeConflict):
		return ReasonClaimCode
	}
	return ReasonInternal
}

// RecordDrawRejected counts a spin that did not produce a draw
func RecordDrawRejected(err error) {
	DrawsRejected.WithLabelValues(RejectionReason(err)).Inc()
}
