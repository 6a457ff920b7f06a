package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/ReviewLottery_Go/internal/domain"
	"github.com/osse101/ReviewLottery_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and writes the mapped status and message.
// 5xx failures log at error level, user-correctable ones at info.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err, "status", status)
	} else {
		log.Info(opName+" rejected", "reason", err.Error(), "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError     = "Authentication failed. Please check your API key."
	ErrMsgResourceNotFoundErr = "Resource not found."
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."

	ErrMsgInvalidRatingError       = "Rating must be between 1 and 5."
	ErrMsgCampaignNotFoundError    = "Campaign not found."
	ErrMsgCampaignInactiveError    = "This campaign is not running right now."
	ErrMsgAlreadyParticipatedError = "You have already spun the wheel for this campaign."
	ErrMsgNoPrizesError            = "No prizes are left in this campaign."
	ErrMsgOutOfStockError          = "That prize just ran out. Please spin again."
	ErrMsgWheelMisconfiguredError  = "The prize wheel is not configured correctly."
	ErrMsgClaimNotFoundError       = "Claim not found."
	ErrMsgClaimNotRedeemedError    = "Only redeemed claims can be anonymized."
	ErrMsgPrizePoolNotFoundError   = "Prize pool not found."
	ErrMsgClaimCodeBusyError       = "Could not issue a claim code. Please try again."
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and messages.
// Anything unrecognized becomes a generic 500 so internal details never reach clients.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidRating):
		return http.StatusBadRequest, ErrMsgInvalidRatingError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrCampaignNotFound):
		return http.StatusNotFound, ErrMsgCampaignNotFoundError
	case errors.Is(err, domain.ErrClaimNotFound):
		return http.StatusNotFound, ErrMsgClaimNotFoundError
	case errors.Is(err, domain.ErrPrizePoolNotFound):
		return http.StatusNotFound, ErrMsgPrizePoolNotFoundError
	case errors.Is(err, domain.ErrCampaignInactive):
		return http.StatusForbidden, ErrMsgCampaignInactiveError
	case errors.Is(err, domain.ErrAlreadyParticipated):
		return http.StatusConflict, ErrMsgAlreadyParticipatedError
	case errors.Is(err, domain.ErrPrizeOutOfStock):
		return http.StatusConflict, ErrMsgOutOfStockError
	case errors.Is(err, domain.ErrNoPrizesAvailable):
		return http.StatusConflict, ErrMsgNoPrizesError
	case errors.Is(err, domain.ErrClaimNotRedeemed):
		return http.StatusConflict, ErrMsgClaimNotRedeemedError
	case errors.Is(err, domain.ErrClaimCodeConflict), errors.Is(err, domain.ErrClaimCodeExhausted):
		return http.StatusServiceUnavailable, ErrMsgClaimCodeBusyError
	case errors.Is(err, domain.ErrZeroProbabilityMass):
		return http.StatusServiceUnavailable, ErrMsgWheelMisconfiguredError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
