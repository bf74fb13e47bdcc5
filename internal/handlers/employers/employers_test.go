package employers

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
	employerservice "github.com/Mannypulator/eps/internal/service/employerservice"
)

func NewMock(t *testing.T) (*EmployerHandler, *MockService) {
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
	body := func() string {
		b, _ := json.Marshal(dto.CreateEmployerRequestDTO{
			CompanyName:        "Acme Pensions Ltd",
			RegistrationNumber: "RC-123456",
			ContactPerson:      "John Smith",
			ContactEmail:       "hr@acme.example.com",
			ContactPhone:       "+2348098765432",
			Address:            "1 Acme Way",
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
			name: "Employer registered",
			body: body,
			prepareMock: func() {
				service.EXPECT().CreateEmployer(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *domain.Employer) (*domain.Employer, error) {
						assert.Equal(t, "RC-123456", e.RegistrationNumber)
						e.ID = uuid.New()
						e.IsActive = true
						e.RegistrationDate = time.Now()
						return e, nil
					})
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
			name: "Registration number already registered",
			body: body,
			prepareMock: func() {
				service.EXPECT().CreateEmployer(gomock.Any(), gomock.Any()).
					Return(nil, employerservice.ErrRegistrationTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "registration number is already registered",
		},
		{
			name: "Internal server error",
			body: body,
			prepareMock: func() {
				service.EXPECT().CreateEmployer(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/employers", bytes.NewBufferString(tt.body))
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
			name: "Employer found",
			id:   id.String(),
			prepareMock: func() {
				service.EXPECT().GetEmployer(gomock.Any(), id).Return(&domain.Employer{
					ID:          id,
					CompanyName: "Acme Pensions Ltd",
					IsActive:    true,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid employer ID",
			id:            "not-a-uuid",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid employer ID",
		},
		{
			name: "Employer not found",
			id:   id.String(),
			prepareMock: func() {
				service.EXPECT().GetEmployer(gomock.Any(), id).Return(nil, employerservice.ErrEmployerNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "employer not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/employers/"+tt.id, nil)
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

func TestGetAllHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetEmployers(gomock.Any()).Return([]domain.Employer{
		{ID: uuid.New(), CompanyName: "Acme Pensions Ltd", IsActive: true},
		{ID: uuid.New(), CompanyName: "Globex Retirement Co", IsActive: false},
	}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/employers", nil)
	w := httptest.NewRecorder()

	handler.GetAll(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Acme Pensions Ltd")
	assert.Contains(t, w.Body.String(), "Globex Retirement Co")
}

func TestUpdateHandler(t *testing.T) {
	handler, service := NewMock(t)
	id := uuid.New()
	body := `{"company_name":"Acme Pensions Ltd","registration_number":"RC-123456","is_active":true}`

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Employer updated",
			prepareMock: func() {
				service.EXPECT().UpdateEmployer(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *domain.Employer) (*domain.Employer, error) {
						assert.Equal(t, id, e.ID)
						assert.True(t, e.IsActive)
						return e, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Employer not found",
			prepareMock: func() {
				service.EXPECT().UpdateEmployer(gomock.Any(), gomock.Any()).
					Return(nil, employerservice.ErrEmployerNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "employer not found",
		},
		{
			name: "Registration number already registered",
			prepareMock: func() {
				service.EXPECT().UpdateEmployer(gomock.Any(), gomock.Any()).
					Return(nil, employerservice.ErrRegistrationTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "registration number is already registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPut, "/api/employers/"+id.String(), bytes.NewBufferString(body))
			r = withURLParam(r, "id", id.String())
			w := httptest.NewRecorder()

			handler.Update(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestDeactivateHandler(t *testing.T) {
	handler, service := NewMock(t)
	id := uuid.New()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Employer deactivated",
			prepareMock: func() {
				service.EXPECT().DeactivateEmployer(gomock.Any(), id).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Employer not found",
			prepareMock: func() {
				service.EXPECT().DeactivateEmployer(gomock.Any(), id).Return(employerservice.ErrEmployerNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "employer not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodDelete, "/api/employers/"+id.String(), nil)
			r = withURLParam(r, "id", id.String())
			w := httptest.NewRecorder()

			handler.Deactivate(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}
