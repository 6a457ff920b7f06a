package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/ReviewLottery_Go/internal/domain"
	"github.com/osse101/ReviewLottery_Go/internal/participation"
)

func TestLotteryHandler_Spin(t *testing.T) {
	campaignID := uuid.New()
	prizeID := uuid.New()
	expires := time.Date(2026, 11, 15, 12, 0, 0, 0, time.UTC)

	valid := SpinRequest{
		CampaignID:       campaignID.String(),
		ParticipantEmail: "ana@example.com",
		ParticipantName:  "Ana",
		RatingGiven:      5,
	}
	wantReq := participation.SpinRequest{
		CampaignID:       campaignID,
		ParticipantEmail: "ana@example.com",
		ParticipantName:  "Ana",
		RatingGiven:      5,
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*MockParticipationService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Success",
			body: valid,
			setupMock: func(m *MockParticipationService) {
				m.On("Spin", mock.Anything, wantReq).Return(&participation.SpinResult{
					PrizeID:            prizeID,
					PrizeName:          "Free Coffee",
					AngleDegrees:       2000.5,
					Segment:            3,
					VisualSegmentIndex: 3,
					ClaimCode:          "RVW-ABC234",
					ExpiresAt:          expires,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Malformed JSON",
			body:           `{"campaign_id":`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  ErrMsgInvalidRequest,
		},
		{
			name:           "Unknown field rejected",
			body:           `{"campaign_id":"` + campaignID.String() + `","participant_email":"a@b.co","participant_name":"A","rating_given":3,"cheat":true}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  ErrMsgInvalidRequest,
		},
		{
			name: "Rating out of range",
			body: SpinRequest{
				CampaignID:       campaignID.String(),
				ParticipantEmail: "ana@example.com",
				ParticipantName:  "Ana",
				RatingGiven:      6,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  ErrMsgInvalidRequestSummary,
		},
		{
			name: "Already participated",
			body: valid,
			setupMock: func(m *MockParticipationService) {
				m.On("Spin", mock.Anything, wantReq).
					Return(nil, fmt.Errorf("record draw: %w", domain.ErrAlreadyParticipated))
			},
			expectedStatus: http.StatusConflict,
			expectedError:  ErrMsgAlreadyParticipatedError,
		},
		{
			name: "Campaign closed",
			body: valid,
			setupMock: func(m *MockParticipationService) {
				m.On("Spin", mock.Anything, wantReq).Return(nil, domain.ErrCampaignInactive)
			},
			expectedStatus: http.StatusForbidden,
			expectedError:  ErrMsgCampaignInactiveError,
		},
		{
			name: "Misconfigured wheel",
			body: valid,
			setupMock: func(m *MockParticipationService) {
				m.On("Spin", mock.Anything, wantReq).Return(nil, domain.ErrZeroProbabilityMass)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedError:  ErrMsgWheelMisconfiguredError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockParticipationService)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}
			h := NewLotteryHandler(svc)

			w := serve(http.MethodPost, "/api/v1/lottery/spin", h.Spin, "/api/v1/lottery/spin", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				resp := decodeBody[ErrorResponse](t, w)
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				resp := decodeBody[participation.SpinResult](t, w)
				assert.Equal(t, prizeID, resp.PrizeID)
				assert.Equal(t, "RVW-ABC234", resp.ClaimCode)
				assert.Equal(t, 3, resp.VisualSegmentIndex)
				assert.True(t, expires.Equal(resp.ExpiresAt))
			}
			svc.AssertExpectations(t)
		})
	}
}
