package contributions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/Mannypulator/eps/internal/domain"
	"github.com/Mannypulator/eps/internal/dto"
	contributionservice "github.com/Mannypulator/eps/internal/service/contributionservice"
)

func NewMock(t *testing.T) (*ContributionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)
	memberID := uuid.New()
	contributionDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	body := func() string {
		b, _ := json.Marshal(dto.CreateContributionRequestDTO{
			MemberID:             memberID,
			Amount:               10000,
			ContributionDate:     contributionDate,
			Type:                 "MONTHLY",
			TransactionReference: "TX-1",
		})
		return string(b)
	}()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Contribution recorded",
			body: body,
			prepareMock: func() {
				service.EXPECT().
					CreateContribution(gomock.Any(), memberID, 10000.0, contributionDate, "MONTHLY", "TX-1").
					Return(&domain.Contribution{
						ID:       uuid.New(),
						MemberID: memberID,
						Amount:   10000,
						Status:   domain.PendingContributionStatus,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          "{invalid",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Non-positive amount",
			body:          `{"member_id":"` + memberID.String() + `","amount":0,"type":"MONTHLY"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Amount must be greater than 0",
		},
		{
			name:          "Unknown contribution type",
			body:          `{"member_id":"` + memberID.String() + `","amount":100,"type":"WEEKLY"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid contribution type",
		},
		{
			name: "Member not found",
			body: body,
			prepareMock: func() {
				service.EXPECT().
					CreateContribution(gomock.Any(), memberID, 10000.0, contributionDate, "MONTHLY", "TX-1").
					Return(nil, contributionservice.ErrMemberNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "member not found",
		},
		{
			name: "Internal server error",
			body: body,
			prepareMock: func() {
				service.EXPECT().
					CreateContribution(gomock.Any(), memberID, 10000.0, contributionDate, "MONTHLY", "TX-1").
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/contributions", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Create(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)
	id := uuid.New()

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Contribution found",
			id:   id.String(),
			prepareMock: func() {
				service.EXPECT().GetContribution(gomock.Any(), id).Return(&domain.Contribution{
					ID:     id,
					Status: domain.PendingContributionStatus,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid contribution ID",
			id:            "not-a-uuid",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid contribution ID",
		},
		{
			name: "Contribution not found",
			id:   id.String(),
			prepareMock: func() {
				service.EXPECT().GetContribution(gomock.Any(), id).Return(nil, contributionservice.ErrContributionNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "contribution not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/contributions/"+tt.id, nil)
			r = withURLParam(r, "id", tt.id)
			w := httptest.NewRecorder()

			handler.Get(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestGetByStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		status        string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Pending contributions listed",
			status: "PENDING",
			prepareMock: func() {
				service.EXPECT().GetContributionsByStatus(gomock.Any(), "PENDING").Return([]domain.Contribution{
					{ID: uuid.New(), Status: domain.PendingContributionStatus},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Unknown status",
			status:        "SHIPPED",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Unknown contribution status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/contributions/status/"+tt.status, nil)
			r = withURLParam(r, "status", tt.status)
			w := httptest.NewRecorder()

			handler.GetByStatus(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestValidateHandler(t *testing.T) {
	handler, service := NewMock(t)
	id := uuid.New()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Contribution validated",
			prepareMock: func() {
				service.EXPECT().ValidateContribution(gomock.Any(), id).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Contribution is not pending",
			prepareMock: func() {
				service.EXPECT().ValidateContribution(gomock.Any(), id).Return(contributionservice.ErrContributionNotPending)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "only pending contributions can be validated",
		},
		{
			name: "Contribution not found",
			prepareMock: func() {
				service.EXPECT().ValidateContribution(gomock.Any(), id).Return(contributionservice.ErrContributionNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "contribution not found",
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().ValidateContribution(gomock.Any(), id).Return(errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/contributions/"+id.String()+"/validate", nil)
			r = withURLParam(r, "id", id.String())
			w := httptest.NewRecorder()

			handler.Validate(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestCalculateInterestHandler(t *testing.T) {
	handler, service := NewMock(t)
	id := uuid.New()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Interest accrued",
			prepareMock: func() {
				service.EXPECT().AccrueInterest(gomock.Any(), id).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Interest already accrued",
			prepareMock: func() {
				service.EXPECT().AccrueInterest(gomock.Any(), id).Return(contributionservice.ErrInterestAlreadyAccrued)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "interest has already been calculated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/contributions/"+id.String()+"/calculate-interest", nil)
			r = withURLParam(r, "id", id.String())
			w := httptest.NewRecorder()

			handler.CalculateInterest(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestGetMemberTotalHandler(t *testing.T) {
	handler, service := NewMock(t)
	memberID := uuid.New()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		query         string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:  "Total returned",
			query: "?start_date=" + start.Format(time.RFC3339) + "&end_date=" + end.Format(time.RFC3339),
			prepareMock: func() {
				service.EXPECT().GetTotalForPeriod(gomock.Any(), memberID, start, end).Return(30000.0, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Missing start date",
			query:         "?end_date=" + end.Format(time.RFC3339),
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid start_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/contributions/member/"+memberID.String()+"/total"+tt.query, nil)
			r = withURLParam(r, "memberID", memberID.String())
			w := httptest.NewRecorder()

			handler.GetMemberTotal(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.PeriodTotalResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 30000.0, body.Total)
			}
		})
	}
}
