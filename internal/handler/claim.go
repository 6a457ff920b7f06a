package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/ReviewLottery_Go/internal/claim"
	"github.com/osse101/ReviewLottery_Go/internal/domain"
	"github.com/osse101/ReviewLottery_Go/internal/logger"
)

// RetrieveClaimsRequest asks for every claim a participant holds
type RetrieveClaimsRequest struct {
	Email      string `json:"email" validate:"required,email,max=254"`
	CommerceID string `json:"commerce_id,omitempty" validate:"omitempty,uuid"`
}

// RedeemClaimRequest represents a staff redemption at the counter
type RedeemClaimRequest struct {
	ClaimCode  string `json:"claim_code" validate:"required,claimcode"`
	RedeemedBy string `json:"redeemed_by" validate:"required,max=100"`
}

// AnonymizeClaimRequest removes participant data from a redeemed claim
type AnonymizeClaimRequest struct {
	ClaimID     string `json:"claim_id" validate:"required,uuid"`
	RequestedBy string `json:"requested_by" validate:"required,max=100"`
}

// ClaimsResponse lists a participant's claims
type ClaimsResponse struct {
	Claims []domain.ClaimView `json:"claims"`
	Count  int                `json:"count"`
}

// ClaimHandler handles claim lookup and redemption
type ClaimHandler struct {
	claimSvc claim.Service
}

// NewClaimHandler creates a new claim handler
func NewClaimHandler(claimSvc claim.Service) *ClaimHandler {
	return &ClaimHandler{claimSvc: claimSvc}
}

// Lookup returns a claim by its code
// @Summary Look up a claim
// @Tags claims
// @Produce json
// @Param code path string true "Claim code"
// @Success 200 {object} domain.ClaimView
// @Failure 400 {object} ErrorResponse "Malformed code"
// @Failure 404 {object} ErrorResponse "Claim not found"
// @Router /api/v1/claims/{code} [get]
func (h *ClaimHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(chi.URLParam(r, "code"))
	if code == "" {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
		return
	}

	c, err := h.claimSvc.Lookup(r.Context(), code)
	if err != nil {
		respondServiceError(w, r, OpLookupClaim, err)
		return
	}

	respondJSON(w, http.StatusOK, domain.ClaimView{Claim: *c, IsExpired: c.Status == domain.ClaimStatusExpired})
}

// Retrieve lists a participant's claims
// @Summary Retrieve a participant's claims
// @Description Returns every claim issued to the email, optionally limited to one commerce
// @Tags claims
// @Accept json
// @Produce json
// @Param request body RetrieveClaimsRequest true "Participant"
// @Success 200 {object} ClaimsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/claims/retrieve [post]
func (h *ClaimHandler) Retrieve(w http.ResponseWriter, r *http.Request) {
	var req RetrieveClaimsRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpRetrieveClaims); err != nil {
		return
	}

	var commerceID *uuid.UUID
	if req.CommerceID != "" {
		id := uuid.MustParse(req.CommerceID)
		commerceID = &id
	}

	views, err := h.claimSvc.Retrieve(r.Context(), req.Email, commerceID)
	if err != nil {
		respondServiceError(w, r, OpRetrieveClaims, err)
		return
	}
	if views == nil {
		views = []domain.ClaimView{}
	}

	respondJSON(w, http.StatusOK, ClaimsResponse{Claims: views, Count: len(views)})
}

// Redeem marks a claim as handed over
// @Summary Redeem a claim
// @Description Already-claimed and expired codes return 200 with the matching outcome
// @Tags claims
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body RedeemClaimRequest true "Redemption"
// @Success 200 {object} domain.RedeemResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Claim not found"
// @Router /api/v1/claims/redeem [post]
func (h *ClaimHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req RedeemClaimRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpRedeemClaim); err != nil {
		return
	}

	result, err := h.claimSvc.Redeem(r.Context(), req.ClaimCode, req.RedeemedBy)
	if err != nil {
		respondServiceError(w, r, OpRedeemClaim, err)
		return
	}

	log.Info("Claim redemption processed", "outcome", result.Outcome, "redeemed_by", req.RedeemedBy)
	respondJSON(w, http.StatusOK, result)
}

// Anonymize strips participant data from a redeemed claim
// @Summary Anonymize a redeemed claim
// @Tags claims
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AnonymizeClaimRequest true "Anonymization"
// @Success 200 {object} domain.Claim
// @Failure 404 {object} ErrorResponse "Claim not found"
// @Failure 409 {object} ErrorResponse "Claim not redeemed yet"
// @Router /api/v1/claims/anonymize [post]
func (h *ClaimHandler) Anonymize(w http.ResponseWriter, r *http.Request) {
	var req AnonymizeClaimRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpAnonymizeClaim); err != nil {
		return
	}

	c, err := h.claimSvc.Anonymize(r.Context(), uuid.MustParse(req.ClaimID), req.RequestedBy)
	if err != nil {
		respondServiceError(w, r, OpAnonymizeClaim, err)
		return
	}

	respondJSON(w, http.StatusOK, c)
}
