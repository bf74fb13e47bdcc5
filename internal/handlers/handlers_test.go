package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/Mannypulator/eps/docs"
	contributionhandlers "github.com/Mannypulator/eps/internal/handlers/contributions"
	employerhandlers "github.com/Mannypulator/eps/internal/handlers/employers"
	memberhandlers "github.com/Mannypulator/eps/internal/handlers/members"
	"github.com/Mannypulator/eps/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		MemberService:       memberhandlers.NewMockService(ctrl),
		EmployerService:     employerhandlers.NewMockService(ctrl),
		ContributionService: contributionhandlers.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMemberHandler := NewMockMemberHandler(ctrl)
	mockEmployerHandler := NewMockEmployerHandler(ctrl)
	mockContributionHandler := NewMockContributionHandler(ctrl)

	mockMemberHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockMemberHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	mockMemberHandler.EXPECT().GetAll(gomock.Any(), gomock.Any()).AnyTimes()
	mockMemberHandler.EXPECT().GetByEmployer(gomock.Any(), gomock.Any()).AnyTimes()
	mockMemberHandler.EXPECT().Update(gomock.Any(), gomock.Any()).AnyTimes()
	mockMemberHandler.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
	mockMemberHandler.EXPECT().GetTotal(gomock.Any(), gomock.Any()).AnyTimes()
	mockMemberHandler.EXPECT().CheckEligibility(gomock.Any(), gomock.Any()).AnyTimes()
	mockMemberHandler.EXPECT().EvaluateEligibility(gomock.Any(), gomock.Any()).AnyTimes()
	mockMemberHandler.EXPECT().GetEligibilityHistory(gomock.Any(), gomock.Any()).AnyTimes()
	mockEmployerHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockEmployerHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	mockEmployerHandler.EXPECT().GetAll(gomock.Any(), gomock.Any()).AnyTimes()
	mockEmployerHandler.EXPECT().Update(gomock.Any(), gomock.Any()).AnyTimes()
	mockEmployerHandler.EXPECT().Deactivate(gomock.Any(), gomock.Any()).AnyTimes()
	mockContributionHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockContributionHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	mockContributionHandler.EXPECT().GetByMember(gomock.Any(), gomock.Any()).AnyTimes()
	mockContributionHandler.EXPECT().GetByStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockContributionHandler.EXPECT().Validate(gomock.Any(), gomock.Any()).AnyTimes()
	mockContributionHandler.EXPECT().Process(gomock.Any(), gomock.Any()).AnyTimes()
	mockContributionHandler.EXPECT().CalculateInterest(gomock.Any(), gomock.Any()).AnyTimes()
	mockContributionHandler.EXPECT().GetMemberTotal(gomock.Any(), gomock.Any()).AnyTimes()
	mockContributionHandler.EXPECT().CheckMonthly(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		MemberHandler:       mockMemberHandler,
		EmployerHandler:     mockEmployerHandler,
		ContributionHandler: mockContributionHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	id := uuid.New().String()

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/members", http.StatusOK},
		{"GET", "/api/members", http.StatusOK},
		{"GET", "/api/members/employer/" + id, http.StatusOK},
		{"GET", "/api/members/" + id, http.StatusOK},
		{"PUT", "/api/members/" + id, http.StatusOK},
		{"DELETE", "/api/members/" + id, http.StatusOK},
		{"GET", "/api/members/" + id + "/total", http.StatusOK},
		{"GET", "/api/members/" + id + "/eligibility", http.StatusOK},
		{"POST", "/api/members/" + id + "/eligibility/evaluate", http.StatusOK},
		{"GET", "/api/members/" + id + "/eligibility/history", http.StatusOK},
		{"POST", "/api/employers", http.StatusOK},
		{"GET", "/api/employers", http.StatusOK},
		{"GET", "/api/employers/" + id, http.StatusOK},
		{"PUT", "/api/employers/" + id, http.StatusOK},
		{"DELETE", "/api/employers/" + id, http.StatusOK},
		{"POST", "/api/contributions", http.StatusOK},
		{"GET", "/api/contributions/status/PENDING", http.StatusOK},
		{"GET", "/api/contributions/member/" + id, http.StatusOK},
		{"GET", "/api/contributions/member/" + id + "/total", http.StatusOK},
		{"GET", "/api/contributions/member/" + id + "/validate-monthly", http.StatusOK},
		{"GET", "/api/contributions/" + id, http.StatusOK},
		{"POST", "/api/contributions/" + id + "/validate", http.StatusOK},
		{"POST", "/api/contributions/" + id + "/process", http.StatusOK},
		{"POST", "/api/contributions/" + id + "/calculate-interest", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
