package handler

import (
	"net/http"

	"github.com/osse101/ReviewLottery_Go/internal/campaign"
)

// CampaignHandler serves the campaign landing page and admin read side
type CampaignHandler struct {
	campaignSvc campaign.Service
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(campaignSvc campaign.Service) *CampaignHandler {
	return &CampaignHandler{campaignSvc: campaignSvc}
}

// GetPublic returns the landing-page view of a campaign
// @Summary Public campaign
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} domain.PublicCampaign
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/public/campaigns/{id} [get]
func (h *CampaignHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	id, ok := URLParamUUID(w, r, "id")
	if !ok {
		return
	}

	pc, err := h.campaignSvc.GetPublicCampaign(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpPublicCampaign, err)
		return
	}

	respondJSON(w, http.StatusOK, pc)
}

// RecordScan counts a QR scan of the campaign
// @Summary Record a scan
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/public/campaigns/{id}/scan [post]
func (h *CampaignHandler) RecordScan(w http.ResponseWriter, r *http.Request) {
	id, ok := URLParamUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.campaignSvc.RecordScan(r.Context(), id); err != nil {
		respondServiceError(w, r, OpRecordScan, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgScanRecorded})
}

// GetPoolSummary reports whether a prize pool's odds add up
// @Summary Prize pool completeness
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Prize pool ID"
// @Success 200 {object} domain.PoolSummary
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/prize-pools/{id}/summary [get]
func (h *CampaignHandler) GetPoolSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := URLParamUUID(w, r, "id")
	if !ok {
		return
	}

	summary, err := h.campaignSvc.GetPoolSummary(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpPoolSummary, err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// GetStats returns dashboard statistics, optionally for one commerce
// @Summary Dashboard statistics
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param commerce_id query string false "Commerce ID"
// @Success 200 {object} domain.DashboardStats
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/stats [get]
func (h *CampaignHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	commerceID, ok := OptionalQueryUUID(w, r, "commerce_id")
	if !ok {
		return
	}

	stats, err := h.campaignSvc.GetStats(r.Context(), commerceID)
	if err != nil {
		respondServiceError(w, r, OpDashboardStats, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
