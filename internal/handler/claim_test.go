package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/ReviewLottery_Go/internal/domain"
)

func sampleClaim(status domain.ClaimStatus) *domain.Claim {
	return &domain.Claim{
		ID:               uuid.New(),
		ParticipantEmail: "ana@example.com",
		ParticipantName:  "Ana",
		ClaimCode:        "RVW-ABC234",
		Status:           status,
		ExpiresAt:        time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestClaimHandler_Lookup(t *testing.T) {
	t.Run("found expired claim is flagged", func(t *testing.T) {
		svc := new(MockClaimService)
		svc.On("Lookup", mock.Anything, "RVW-ABC234").Return(sampleClaim(domain.ClaimStatusExpired), nil)

		w := serve(http.MethodGet, "/api/v1/claims/{code}", NewClaimHandler(svc).Lookup, "/api/v1/claims/RVW-ABC234", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		view := decodeBody[domain.ClaimView](t, w)
		assert.True(t, view.IsExpired)
		assert.Equal(t, domain.ClaimStatusExpired, view.Status)
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockClaimService)
		svc.On("Lookup", mock.Anything, "RVW-ZZZZZZ").Return(nil, domain.ErrClaimNotFound)

		w := serve(http.MethodGet, "/api/v1/claims/{code}", NewClaimHandler(svc).Lookup, "/api/v1/claims/RVW-ZZZZZZ", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, ErrMsgClaimNotFoundError, decodeBody[ErrorResponse](t, w).Error)
	})
}

func TestClaimHandler_Retrieve(t *testing.T) {
	commerceID := uuid.New()

	t.Run("filters by commerce", func(t *testing.T) {
		svc := new(MockClaimService)
		svc.On("Retrieve", mock.Anything, "ana@example.com", &commerceID).
			Return([]domain.ClaimView{{Claim: *sampleClaim(domain.ClaimStatusPending)}}, nil)

		w := serve(http.MethodPost, "/api/v1/claims/retrieve", NewClaimHandler(svc).Retrieve, "/api/v1/claims/retrieve",
			RetrieveClaimsRequest{Email: "ana@example.com", CommerceID: commerceID.String()})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, decodeBody[ClaimsResponse](t, w).Count)
		svc.AssertExpectations(t)
	})

	t.Run("no claims returns empty list", func(t *testing.T) {
		svc := new(MockClaimService)
		svc.On("Retrieve", mock.Anything, "bo@example.com", (*uuid.UUID)(nil)).Return(nil, nil)

		w := serve(http.MethodPost, "/api/v1/claims/retrieve", NewClaimHandler(svc).Retrieve, "/api/v1/claims/retrieve",
			RetrieveClaimsRequest{Email: "bo@example.com"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"claims":[],"count":0}`, w.Body.String())
	})

	t.Run("invalid email", func(t *testing.T) {
		svc := new(MockClaimService)

		w := serve(http.MethodPost, "/api/v1/claims/retrieve", NewClaimHandler(svc).Retrieve, "/api/v1/claims/retrieve",
			RetrieveClaimsRequest{Email: "ana"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Retrieve", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestClaimHandler_Redeem(t *testing.T) {
	tests := []struct {
		name            string
		body            RedeemClaimRequest
		setupMock       func(*MockClaimService)
		expectedStatus  int
		expectedOutcome domain.RedeemOutcome
	}{
		{
			name: "redeemed",
			body: RedeemClaimRequest{ClaimCode: "rvw-abc234", RedeemedBy: "cashier-1"},
			setupMock: func(m *MockClaimService) {
				m.On("Redeem", mock.Anything, "rvw-abc234", "cashier-1").Return(&domain.RedeemResult{
					Outcome: domain.RedeemOutcomeRedeemed,
					Claim:   sampleClaim(domain.ClaimStatusClaimed),
				}, nil)
			},
			expectedStatus:  http.StatusOK,
			expectedOutcome: domain.RedeemOutcomeRedeemed,
		},
		{
			name: "already claimed is not an error",
			body: RedeemClaimRequest{ClaimCode: "RVW-ABC234", RedeemedBy: "cashier-2"},
			setupMock: func(m *MockClaimService) {
				m.On("Redeem", mock.Anything, "RVW-ABC234", "cashier-2").Return(&domain.RedeemResult{
					Outcome: domain.RedeemOutcomeAlreadyClaimed,
					Claim:   sampleClaim(domain.ClaimStatusClaimed),
				}, nil)
			},
			expectedStatus:  http.StatusOK,
			expectedOutcome: domain.RedeemOutcomeAlreadyClaimed,
		},
		{
			name:           "malformed code rejected before service",
			body:           RedeemClaimRequest{ClaimCode: "RVW-0000", RedeemedBy: "cashier-1"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "store failure hides details",
			body: RedeemClaimRequest{ClaimCode: "RVW-ABC234", RedeemedBy: "cashier-1"},
			setupMock: func(m *MockClaimService) {
				m.On("Redeem", mock.Anything, "RVW-ABC234", "cashier-1").Return(nil, errors.New("pq: connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockClaimService)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			w := serve(http.MethodPost, "/api/v1/claims/redeem", NewClaimHandler(svc).Redeem, "/api/v1/claims/redeem", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedOutcome != "" {
				assert.Equal(t, tt.expectedOutcome, decodeBody[domain.RedeemResult](t, w).Outcome)
			}
			if tt.expectedStatus == http.StatusInternalServerError {
				assert.Equal(t, ErrMsgGenericServerError, decodeBody[ErrorResponse](t, w).Error)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestClaimHandler_Anonymize(t *testing.T) {
	claimID := uuid.New()

	t.Run("pending claim cannot be anonymized", func(t *testing.T) {
		svc := new(MockClaimService)
		svc.On("Anonymize", mock.Anything, claimID, "privacy-officer").Return(nil, domain.ErrClaimNotRedeemed)

		w := serve(http.MethodPost, "/api/v1/claims/anonymize", NewClaimHandler(svc).Anonymize, "/api/v1/claims/anonymize",
			AnonymizeClaimRequest{ClaimID: claimID.String(), RequestedBy: "privacy-officer"})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, ErrMsgClaimNotRedeemedError, decodeBody[ErrorResponse](t, w).Error)
	})

	t.Run("redacted claim returned", func(t *testing.T) {
		redacted := sampleClaim(domain.ClaimStatusClaimed)
		redacted.ParticipantEmail = domain.RedactedValue
		redacted.ParticipantName = domain.RedactedValue

		svc := new(MockClaimService)
		svc.On("Anonymize", mock.Anything, claimID, "privacy-officer").Return(redacted, nil)

		w := serve(http.MethodPost, "/api/v1/claims/anonymize", NewClaimHandler(svc).Anonymize, "/api/v1/claims/anonymize",
			AnonymizeClaimRequest{ClaimID: claimID.String(), RequestedBy: "privacy-officer"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.RedactedValue, decodeBody[domain.Claim](t, w).ParticipantEmail)
	})
}
