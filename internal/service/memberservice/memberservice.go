package memberservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Mannypulator/eps/internal/domain"
	"github.com/Mannypulator/eps/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=memberservice.go -destination=mock_memberservice.go -package=memberservice

type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Member, error)
	Save(ctx context.Context, m *domain.Member) error
	Update(ctx context.Context, m *domain.Member) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context) ([]domain.Member, error)
	FindByEmployerID(ctx context.Context, employerID uuid.UUID) ([]domain.Member, error)
	IsEmailUnique(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	IsPhoneUnique(ctx context.Context, phone string, excludeID uuid.UUID) (bool, error)
	SumContributions(ctx context.Context, memberID uuid.UUID) (float64, error)
	CountContributionMonths(ctx context.Context, memberID uuid.UUID) (int, error)
}

type HistoryRepo interface {
	Append(ctx context.Context, h *domain.BenefitEligibilityHistory) error
	FindByMemberID(ctx context.Context, memberID uuid.UUID) ([]domain.BenefitEligibilityHistory, error)
}

type EmployerRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Employer, error)
}

type Service struct {
	repo         Repo
	historyRepo  HistoryRepo
	employerRepo EmployerRepo
	txManager    pg.TXManager
}

func New(repo Repo, historyRepo HistoryRepo, employerRepo EmployerRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:         repo,
		historyRepo:  historyRepo,
		employerRepo: employerRepo,
		txManager:    txManager,
	}
}

var (
	ErrMemberNotFound   = errors.New("member not found")
	ErrEmployerInactive = errors.New("member must be associated with an active employer")
	ErrEmailTaken       = errors.New("email is already registered")
	ErrPhoneTaken       = errors.New("phone number is already registered")
)

// Benefit eligibility thresholds: a member qualifies with contributions in at
// least 6 distinct calendar months totalling at least 50000. No partial credit.
const (
	MinContributionMonths = 6
	MinTotalContributions = 50000.0
)

const (
	eligibleReason    = "Met eligibility criteria"
	notEligibleReason = "Does not meet eligibility criteria"
)

func (s *Service) CreateMember(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	employer, err := s.employerRepo.FindByID(ctx, member.EmployerID)
	if err != nil {
		return nil, err
	}
	if employer == nil || !employer.IsActive {
		zap.L().Info("member rejected: employer missing or inactive", zap.String("employer_id", member.EmployerID.String()))
		return nil, ErrEmployerInactive
	}

	if err := s.checkUniqueness(ctx, member.Email, member.Phone, uuid.Nil); err != nil {
		return nil, err
	}

	member.ID = uuid.New()
	member.IsEligibleForBenefits = false
	member.BenefitsEligibilityDate = nil
	member.CreatedAt = time.Now()

	if err := s.repo.Save(ctx, member); err != nil {
		zap.L().Error("can't save member: ", zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (s *Service) UpdateMember(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	existing, err := s.repo.FindByID(ctx, member.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrMemberNotFound
	}

	employer, err := s.employerRepo.FindByID(ctx, member.EmployerID)
	if err != nil {
		return nil, err
	}
	if employer == nil || !employer.IsActive {
		return nil, ErrEmployerInactive
	}

	if err := s.checkUniqueness(ctx, member.Email, member.Phone, member.ID); err != nil {
		return nil, err
	}

	existing.FirstName = member.FirstName
	existing.LastName = member.LastName
	existing.DateOfBirth = member.DateOfBirth
	existing.Email = member.Email
	existing.Phone = member.Phone
	existing.EmployerID = member.EmployerID

	if err := s.repo.Update(ctx, existing); err != nil {
		zap.L().Error("failed to update member", zap.Error(err))
		return nil, err
	}
	return existing, nil
}

func (s *Service) GetMember(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

func (s *Service) GetMembers(ctx context.Context) ([]domain.Member, error) {
	members, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get members", zap.Error(err))
		return nil, err
	}
	return members, nil
}

func (s *Service) GetMembersByEmployer(ctx context.Context, employerID uuid.UUID) ([]domain.Member, error) {
	members, err := s.repo.FindByEmployerID(ctx, employerID)
	if err != nil {
		zap.L().Error("failed to get members by employer", zap.Error(err))
		return nil, err
	}
	return members, nil
}

func (s *Service) DeleteMember(ctx context.Context, id uuid.UUID) error {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrMemberNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetTotalContributions(ctx context.Context, memberID uuid.UUID) (float64, error) {
	member, err := s.repo.FindByID(ctx, memberID)
	if err != nil {
		return 0, err
	}
	if member == nil {
		return 0, ErrMemberNotFound
	}
	return s.repo.SumContributions(ctx, memberID)
}

func (s *Service) GetEligibilityHistory(ctx context.Context, memberID uuid.UUID) ([]domain.BenefitEligibilityHistory, error) {
	history, err := s.historyRepo.FindByMemberID(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to get eligibility history", zap.Error(err))
		return nil, err
	}
	return history, nil
}

// IsEligibleForBenefits is the pure query form of the eligibility rule: it
// computes the current determination without touching stored state.
func (s *Service) IsEligibleForBenefits(ctx context.Context, memberID uuid.UUID) (bool, error) {
	member, err := s.repo.FindByID(ctx, memberID)
	if err != nil {
		return false, err
	}
	if member == nil {
		return false, ErrMemberNotFound
	}

	_, _, eligible, err := s.evaluate(ctx, memberID)
	return eligible, err
}

// EvaluateEligibility recomputes the member's benefit eligibility. When the
// determination differs from the stored flag, the member update and the
// history append are committed inside one transaction: either both persist or
// neither does. An unchanged determination writes nothing at all.
func (s *Service) EvaluateEligibility(ctx context.Context, memberID uuid.UUID) error {
	member, err := s.repo.FindByID(ctx, memberID)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrMemberNotFound
	}

	total, months, eligible, err := s.evaluate(ctx, memberID)
	if err != nil {
		return err
	}
	if eligible == member.IsEligibleForBenefits {
		return nil
	}

	now := time.Now()
	member.IsEligibleForBenefits = eligible
	if eligible {
		member.BenefitsEligibilityDate = &now
	} else {
		member.BenefitsEligibilityDate = nil
	}

	reason := notEligibleReason
	if eligible {
		reason = eligibleReason
	}
	history := &domain.BenefitEligibilityHistory{
		ID:                 uuid.New(),
		MemberID:           memberID,
		IsEligible:         eligible,
		EvaluationDate:     now,
		TotalContributions: total,
		ContributionMonths: months,
		Reason:             reason,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, member); err != nil {
			return err
		}
		return s.historyRepo.Append(ctx, history)
	})
	if err != nil {
		zap.L().Error("eligibility change rolled back",
			zap.String("member_id", memberID.String()),
			zap.Error(err),
		)
		return err
	}

	zap.L().Info("benefit eligibility changed",
		zap.String("member_id", memberID.String()),
		zap.Bool("is_eligible", eligible),
		zap.Float64("total_contributions", total),
		zap.Int("contribution_months", months),
	)
	return nil
}

// evaluate reads the snapshot once so the decision and the audit row are
// always built from the same inputs.
func (s *Service) evaluate(ctx context.Context, memberID uuid.UUID) (total float64, months int, eligible bool, err error) {
	total, err = s.repo.SumContributions(ctx, memberID)
	if err != nil {
		return 0, 0, false, err
	}
	months, err = s.repo.CountContributionMonths(ctx, memberID)
	if err != nil {
		return 0, 0, false, err
	}
	eligible = months >= MinContributionMonths && total >= MinTotalContributions
	return total, months, eligible, nil
}

func (s *Service) checkUniqueness(ctx context.Context, email, phone string, excludeID uuid.UUID) error {
	unique, err := s.repo.IsEmailUnique(ctx, email, excludeID)
	if err != nil {
		return err
	}
	if !unique {
		return ErrEmailTaken
	}

	unique, err = s.repo.IsPhoneUnique(ctx, phone, excludeID)
	if err != nil {
		return err
	}
	if !unique {
		return ErrPhoneTaken
	}
	return nil
}
