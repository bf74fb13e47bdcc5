package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/Mannypulator/eps/internal/pg"
	contributionrepo "github.com/Mannypulator/eps/internal/repo/contribution-repo"
	eligibilityrepo "github.com/Mannypulator/eps/internal/repo/eligibility-repo"
	employerrepo "github.com/Mannypulator/eps/internal/repo/employer-repo"
	memberrepo "github.com/Mannypulator/eps/internal/repo/member-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.MemberRepo)
	assert.NotNil(t, repo.EmployerRepo)
	assert.NotNil(t, repo.ContributionRepo)
	assert.NotNil(t, repo.EligibilityRepo)

	assert.IsType(t, &memberrepo.Repository{}, repo.MemberRepo)
	assert.IsType(t, &employerrepo.Repository{}, repo.EmployerRepo)
	assert.IsType(t, &contributionrepo.Repository{}, repo.ContributionRepo)
	assert.IsType(t, &eligibilityrepo.Repository{}, repo.EligibilityRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
