package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/Mannypulator/eps/internal/pg"
	"github.com/Mannypulator/eps/internal/repo"
	"github.com/Mannypulator/eps/internal/service/contributionservice"
	"github.com/Mannypulator/eps/internal/service/employerservice"
	"github.com/Mannypulator/eps/internal/service/memberservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMemberRepo := memberservice.NewMockRepo(ctrl)
	mockEmployerRepo := employerservice.NewMockRepo(ctrl)
	mockContributionRepo := contributionservice.NewMockRepo(ctrl)
	mockHistoryRepo := memberservice.NewMockHistoryRepo(ctrl)
	mockTxManager := pg.NewMockTXManager(ctrl)

	repos := &repo.Repositories{
		MemberRepo:       mockMemberRepo,
		EmployerRepo:     mockEmployerRepo,
		ContributionRepo: mockContributionRepo,
		EligibilityRepo:  mockHistoryRepo,
	}

	services := New(repos, mockTxManager)

	assert.NotNil(t, services.MemberService)
	assert.NotNil(t, services.EmployerService)
	assert.NotNil(t, services.ContributionService)
}
