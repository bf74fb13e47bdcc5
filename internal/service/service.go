package service

import (
	"github.com/Mannypulator/eps/internal/handlers/contributions"
	"github.com/Mannypulator/eps/internal/handlers/employers"
	"github.com/Mannypulator/eps/internal/handlers/members"

	"github.com/Mannypulator/eps/internal/pg"
	"github.com/Mannypulator/eps/internal/repo"
	contributionservice "github.com/Mannypulator/eps/internal/service/contributionservice"
	employerservice "github.com/Mannypulator/eps/internal/service/employerservice"
	memberservice "github.com/Mannypulator/eps/internal/service/memberservice"
)

type Services struct {
	MemberService       members.Service
	EmployerService     employers.Service
	ContributionService contributions.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	employerService := employerservice.New(repo.EmployerRepo)
	memberService := memberservice.New(repo.MemberRepo, repo.EligibilityRepo, repo.EmployerRepo, txManager)
	contributionService := contributionservice.New(repo.ContributionRepo, repo.MemberRepo, memberService)

	return &Services{
		MemberService:       memberService,
		EmployerService:     employerService,
		ContributionService: contributionService,
	}
}
