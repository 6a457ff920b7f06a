package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/osse101/ReviewLottery_Go/internal/logger"
	"github.com/osse101/ReviewLottery_Go/internal/metrics"
	"github.com/osse101/ReviewLottery_Go/internal/participation"
)

// SpinRequest represents a participant's rating and draw request
type SpinRequest struct {
	CampaignID       string `json:"campaign_id" validate:"required,uuid"`
	ParticipantEmail string `json:"participant_email" validate:"required,email,max=254"`
	ParticipantName  string `json:"participant_name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	RatingGiven      int    `json:"rating_given" validate:"required,min=1,max=5"`
}

// LotteryHandler handles prize wheel requests
type LotteryHandler struct {
	participationSvc participation.Service
}

// NewLotteryHandler creates a new lottery handler
func NewLotteryHandler(participationSvc participation.Service) *LotteryHandler {
	return &LotteryHandler{
		participationSvc: participationSvc,
	}
}

// Spin handles the spin endpoint
// @Summary Spin the prize wheel
// @Description Records the participant's rating, draws a prize and issues a claim code
// @Tags lottery
// @Accept json
// @Produce json
// @Param request body SpinRequest true "Spin request"
// @Success 200 {object} participation.SpinResult "Prize drawn"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Campaign not running"
// @Failure 404 {object} ErrorResponse "Campaign not found"
// @Failure 409 {object} ErrorResponse "Already participated or prize sold out"
// @Failure 503 {object} ErrorResponse "Wheel misconfigured"
// @Router /api/v1/lottery/spin [post]
func (h *LotteryHandler) Spin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req SpinRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpSpin); err != nil {
		return
	}

	// validated as a UUID above
	campaignID := uuid.MustParse(req.CampaignID)

	log.Info("Spin request received", "campaign_id", campaignID, "rating", req.RatingGiven)

	result, err := h.participationSvc.Spin(r.Context(), participation.SpinRequest{
		CampaignID:       campaignID,
		ParticipantEmail: req.ParticipantEmail,
		ParticipantName:  req.ParticipantName,
		RatingGiven:      req.RatingGiven,
	})
	if err != nil {
		metrics.RecordDrawRejected(err)
		respondServiceError(w, r, OpSpin, err)
		return
	}

	log.Info("Spin completed",
		"campaign_id", campaignID,
		"prize_id", result.PrizeID,
		"segment", result.VisualSegmentIndex)

	respondJSON(w, http.StatusOK, result)
}
