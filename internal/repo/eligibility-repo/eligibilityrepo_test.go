package eligibilityrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Mannypulator/eps/internal/domain"
	"github.com/Mannypulator/eps/internal/pg"
)

var historyColumns = []string{
	"id", "member_id", "is_eligible", "evaluation_date", "total_contributions", "contribution_months", "reason",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_Append(t *testing.T) {
	repo, mock, tx := NewMock(t)
	entry := &domain.BenefitEligibilityHistory{
		ID:                 uuid.New(),
		MemberID:           uuid.New(),
		IsEligible:         true,
		EvaluationDate:     time.Now(),
		TotalContributions: 60000.0,
		ContributionMonths: 7,
		Reason:             "Met eligibility criteria",
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Append history row successfully",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("INSERT INTO benefit_eligibility_history")).
						WithArgs(entry.ID, entry.MemberID, entry.IsEligible, entry.EvaluationDate,
							entry.TotalContributions, entry.ContributionMonths, entry.Reason).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					return fn(ctx)
				})
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("INSERT INTO benefit_eligibility_history")).
						WithArgs(entry.ID, entry.MemberID, entry.IsEligible, entry.EvaluationDate,
							entry.TotalContributions, entry.ContributionMonths, entry.Reason).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Append(context.Background(), entry)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_FindByMemberID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	memberID := uuid.New()
	earlier := time.Now().Add(-24 * time.Hour)
	later := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.BenefitEligibilityHistory
	}{
		{
			name: "History returned most recent first",
			mockSetup: func() {
				rows := pgxmock.NewRows(historyColumns).
					AddRow(uuid.Nil, memberID, true, later, 60000.0, 7, "Met eligibility criteria").
					AddRow(uuid.Nil, memberID, false, earlier, 30000.0, 3, "Does not meet eligibility criteria")
				mock.ExpectQuery(regexp.QuoteMeta("FROM benefit_eligibility_history")).
					WithArgs(memberID).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.BenefitEligibilityHistory{
				{MemberID: memberID, IsEligible: true, EvaluationDate: later, TotalContributions: 60000.0, ContributionMonths: 7, Reason: "Met eligibility criteria"},
				{MemberID: memberID, IsEligible: false, EvaluationDate: earlier, TotalContributions: 30000.0, ContributionMonths: 3, Reason: "Does not meet eligibility criteria"},
			},
		},
		{
			name: "No history yet",
			mockSetup: func() {
				rows := pgxmock.NewRows(historyColumns)
				mock.ExpectQuery(regexp.QuoteMeta("FROM benefit_eligibility_history")).
					WithArgs(memberID).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM benefit_eligibility_history")).
					WithArgs(memberID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByMemberID(context.Background(), memberID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}
