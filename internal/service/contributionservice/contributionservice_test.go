package contributionservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/Mannypulator/eps/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockMemberRepo, *MockEligibilityEvaluator) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	memberRepo := NewMockMemberRepo(ctrl)
	eligibility := NewMockEligibilityEvaluator(ctrl)
	service := New(repo, memberRepo, eligibility)
	defer ctrl.Finish()
	return service, repo, memberRepo, eligibility
}

func TestCreateContribution(t *testing.T) {
	service, repo, memberRepo, _ := NewMock(t)
	memberID := uuid.New()
	contributionDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Member not found",
			prepareMock: func() {
				memberRepo.EXPECT().FindByID(gomock.Any(), memberID).Return(nil, nil)
			},
			expectedError: ErrMemberNotFound,
		},
		{
			name: "Cannot look up member",
			prepareMock: func() {
				memberRepo.EXPECT().FindByID(gomock.Any(), memberID).Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
		{
			name: "Contribution recorded as pending",
			prepareMock: func() {
				memberRepo.EXPECT().FindByID(gomock.Any(), memberID).Return(&domain.Member{ID: memberID}, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "Cannot save contribution",
			prepareMock: func() {
				memberRepo.EXPECT().FindByID(gomock.Any(), memberID).Return(&domain.Member{ID: memberID}, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			contribution, err := service.CreateContribution(context.Background(), memberID, 10000, contributionDate, domain.MonthlyContributionType, "TX-1")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, contribution)
				assert.Equal(t, memberID, contribution.MemberID)
				assert.Equal(t, domain.PendingContributionStatus, contribution.Status)
				assert.NotEqual(t, uuid.Nil, contribution.ID)
			}
		})
	}
}

func TestValidateContribution(t *testing.T) {
	service, repo, _, eligibility := NewMock(t)
	id := uuid.New()
	memberID := uuid.New()
	past := time.Now().Add(-24 * time.Hour)
	future := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name            string
		prepareMock     func()
		expectedError   error
		expectedStatus  string
		expectedMessage string
	}{
		{
			name: "Contribution not found",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, nil)
			},
			expectedError: ErrContributionNotFound,
		},
		{
			name: "Contribution is not pending",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(&domain.Contribution{
					ID:     id,
					Status: domain.ProcessedContributionStatus,
				}, nil)
			},
			expectedError: ErrContributionNotPending,
		},
		{
			name: "Valid contribution is validated and eligibility re-evaluated",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(&domain.Contribution{
					ID:               id,
					MemberID:         memberID,
					Amount:           10000,
					ContributionDate: past,
					Status:           domain.PendingContributionStatus,
				}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				eligibility.EXPECT().EvaluateEligibility(gomock.Any(), memberID).Return(nil)
			},
			expectedStatus: domain.ValidatedContributionStatus,
		},
		{
			name: "Non-positive amount fails validation",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(&domain.Contribution{
					ID:               id,
					MemberID:         memberID,
					Amount:           0,
					ContributionDate: past,
					Status:           domain.PendingContributionStatus,
				}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus:  domain.FailedContributionStatus,
			expectedMessage: "Invalid contribution amount.",
		},
		{
			name: "Amount rule wins when the date is also in the future",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(&domain.Contribution{
					ID:               id,
					MemberID:         memberID,
					Amount:           -5,
					ContributionDate: future,
					Status:           domain.PendingContributionStatus,
				}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus:  domain.FailedContributionStatus,
			expectedMessage: "Invalid contribution amount.",
		},
		{
			name: "Future dated contribution fails validation",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(&domain.Contribution{
					ID:               id,
					MemberID:         memberID,
					Amount:           10000,
					ContributionDate: future,
					Status:           domain.PendingContributionStatus,
				}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus:  domain.FailedContributionStatus,
			expectedMessage: "Contribution date cannot be in the future.",
		},
		{
			name: "Eligibility failure does not unwind the transition",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(&domain.Contribution{
					ID:               id,
					MemberID:         memberID,
					Amount:           10000,
					ContributionDate: past,
					Status:           domain.PendingContributionStatus,
				}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				eligibility.EXPECT().EvaluateEligibility(gomock.Any(), memberID).Return(errors.New("some error"))
			},
			expectedStatus: domain.ValidatedContributionStatus,
		},
		{
			name: "Cannot persist the transition",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(&domain.Contribution{
					ID:               id,
					MemberID:         memberID,
					Amount:           10000,
					ContributionDate: past,
					Status:           domain.PendingContributionStatus,
				}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("some error"))
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.ValidateContribution(context.Background(), id)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateContributionPersistedState(t *testing.T) {
	service, repo, _, eligibility := NewMock(t)
	id := uuid.New()
	memberID := uuid.New()
	future := time.Now().Add(24 * time.Hour)

	var saved domain.Contribution
	repo.EXPECT().FindByID(gomock.Any(), id).Return(&domain.Contribution{
		ID:               id,
		MemberID:         memberID,
		Amount:           -5,
		ContributionDate: future,
		Status:           domain.PendingContributionStatus,
	}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.Contribution) error {
		saved = *c
		return nil
	})
	eligibility.EXPECT().EvaluateEligibility(gomock.Any(), gomock.Any()).Times(0)

	err := service.ValidateContribution(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, domain.FailedContributionStatus, saved.Status)
	assert.Equal(t, "Invalid contribution amount.", saved.ValidationMessage)
}

func TestProcessContribution(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	id := uuid.New()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Contribution not found",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, nil)
			},
			expectedError: ErrContributionNotFound,
		},
		{
			name: "Contribution is not validated",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(&domain.Contribution{
					ID:     id,
					Status: domain.PendingContributionStatus,
				}, nil)
			},
			expectedError: ErrContributionNotValidated,
		},
		{
			name: "Validated contribution is processed",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(&domain.Contribution{
					ID:     id,
					Status: domain.ValidatedContributionStatus,
				}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.Contribution) error {
					assert.Equal(t, domain.ProcessedContributionStatus, c.Status)
					return nil
				})
			},
			expectedError: nil,
		},
		{
			name: "Cannot persist the transition",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(&domain.Contribution{
					ID:     id,
					Status: domain.ValidatedContributionStatus,
				}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("some error"))
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.ProcessContribution(context.Background(), id)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccrueInterest(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	id := uuid.New()
	accruedAt := time.Now().Add(-time.Hour)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Contribution not found",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, nil)
			},
			expectedError: ErrContributionNotFound,
		},
		{
			name: "Contribution is not processed",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(&domain.Contribution{
					ID:     id,
					Status: domain.ValidatedContributionStatus,
				}, nil)
			},
			expectedError: ErrContributionNotProcessed,
		},
		{
			name: "Interest already accrued",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(&domain.Contribution{
					ID:                      id,
					Status:                  domain.ProcessedContributionStatus,
					InterestCalculationDate: &accruedAt,
				}, nil)
			},
			expectedError: ErrInterestAlreadyAccrued,
		},
		{
			name: "Cannot persist accrued interest",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(&domain.Contribution{
					ID:               id,
					Amount:           1200,
					ContributionDate: time.Now().Add(-60 * 24 * time.Hour),
					Status:           domain.ProcessedContributionStatus,
				}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.AccrueInterest(context.Background(), id)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccrueInterestAmount(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	id := uuid.New()

	// 1200 held for 60 days at 5% per annum: 1200 * (0.05/12) * (60/30) = 10
	var saved domain.Contribution
	repo.EXPECT().FindByID(gomock.Any(), id).Return(&domain.Contribution{
		ID:               id,
		Amount:           1200,
		ContributionDate: time.Now().Add(-60 * 24 * time.Hour),
		Status:           domain.ProcessedContributionStatus,
	}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.Contribution) error {
		saved = *c
		return nil
	})

	err := service.AccrueInterest(context.Background(), id)
	assert.NoError(t, err)
	assert.NotNil(t, saved.InterestEarned)
	assert.InDelta(t, 10.0, *saved.InterestEarned, 0.0001)
	assert.NotNil(t, saved.InterestCalculationDate)
}

func TestGetContribution(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	id := uuid.New()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Contribution found",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(&domain.Contribution{ID: id}, nil)
			},
		},
		{
			name: "Contribution not found",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, nil)
			},
			expectedError: ErrContributionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			contribution, err := service.GetContribution(context.Background(), id)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, id, contribution.ID)
			}
		})
	}
}

func TestGetTotalForPeriod(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	memberID := uuid.New()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().SumForPeriod(gomock.Any(), memberID, start, end).Return(30000.0, nil)

	total, err := service.GetTotalForPeriod(context.Background(), memberID, start, end)
	assert.NoError(t, err)
	assert.Equal(t, 30000.0, total)
}

func TestHasMonthlyContribution(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	memberID := uuid.New()
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().HasMonthlyContribution(gomock.Any(), memberID, date).Return(true, nil)

	has, err := service.HasMonthlyContribution(context.Background(), memberID, date)
	assert.NoError(t, err)
	assert.True(t, has)
}
