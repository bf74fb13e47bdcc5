package repo

import (
	"github.com/Mannypulator/eps/internal/pg"
	contributionrepo "github.com/Mannypulator/eps/internal/repo/contribution-repo"
	eligibilityrepo "github.com/Mannypulator/eps/internal/repo/eligibility-repo"
	employerrepo "github.com/Mannypulator/eps/internal/repo/employer-repo"
	memberrepo "github.com/Mannypulator/eps/internal/repo/member-repo"
	"github.com/Mannypulator/eps/internal/service/contributionservice"
	"github.com/Mannypulator/eps/internal/service/employerservice"
	"github.com/Mannypulator/eps/internal/service/memberservice"
)

type Repositories struct {
	MemberRepo       memberservice.Repo
	EmployerRepo     employerservice.Repo
	ContributionRepo contributionservice.Repo
	EligibilityRepo  memberservice.HistoryRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	mRepo := memberrepo.New(conn, txManager)
	eRepo := employerrepo.New(conn, txManager)
	cRepo := contributionrepo.New(conn, txManager)
	hRepo := eligibilityrepo.New(conn, txManager)

	return &Repositories{
		MemberRepo:       mRepo,
		EmployerRepo:     eRepo,
		ContributionRepo: cRepo,
		EligibilityRepo:  hRepo,
	}
}
