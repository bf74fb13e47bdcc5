package contributionservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Mannypulator/eps/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=contributionservice.go -destination=mock_contributionservice.go -package=contributionservice

type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Contribution, error)
	Save(ctx context.Context, c *domain.Contribution) error
	Update(ctx context.Context, c *domain.Contribution) error
	FindByMemberID(ctx context.Context, memberID uuid.UUID) ([]domain.Contribution, error)
	FindByStatus(ctx context.Context, status string) ([]domain.Contribution, error)
	SumForPeriod(ctx context.Context, memberID uuid.UUID, start, end time.Time) (float64, error)
	HasMonthlyContribution(ctx context.Context, memberID uuid.UUID, date time.Time) (bool, error)
}

type MemberRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Member, error)
}

type EligibilityEvaluator interface {
	EvaluateEligibility(ctx context.Context, memberID uuid.UUID) error
}

type Service struct {
	repo        Repo
	memberRepo  MemberRepo
	eligibility EligibilityEvaluator
}

func New(repo Repo, memberRepo MemberRepo, eligibility EligibilityEvaluator) *Service {
	return &Service{
		repo:        repo,
		memberRepo:  memberRepo,
		eligibility: eligibility,
	}
}

var (
	ErrContributionNotFound     = errors.New("contribution not found")
	ErrMemberNotFound           = errors.New("member not found")
	ErrContributionNotPending   = errors.New("only pending contributions can be validated")
	ErrContributionNotValidated = errors.New("only validated contributions can be processed")
	ErrContributionNotProcessed = errors.New("only processed contributions can earn interest")
	ErrInterestAlreadyAccrued   = errors.New("interest has already been calculated for this contribution")
)

const (
	invalidAmountMessage = "Invalid contribution amount."
	futureDateMessage    = "Contribution date cannot be in the future."
)

// Interest accrues at 5% per annum simple interest, prorated by months held:
// interest = amount * (annualInterestRate / 12) * monthsHeld. The rate divides
// by 12 months, not by 365 days; months held are whole days since the
// contribution date divided by 30.
const (
	annualInterestRate = 0.05
	daysPerMonth       = 30.0
)

func (s *Service) CreateContribution(ctx context.Context, memberID uuid.UUID, amount float64, contributionDate time.Time, contributionType, transactionReference string) (*domain.Contribution, error) {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		zap.L().Info("member not found for contribution", zap.String("member_id", memberID.String()))
		return nil, ErrMemberNotFound
	}

	contribution := &domain.Contribution{
		ID:                   uuid.New(),
		MemberID:             memberID,
		Amount:               amount,
		ContributionDate:     contributionDate,
		Type:                 contributionType,
		TransactionReference: transactionReference,
		Status:               domain.PendingContributionStatus,
		CreatedAt:            time.Now(),
	}

	if err := s.repo.Save(ctx, contribution); err != nil {
		zap.L().Error("can't save contribution: ", zap.Error(err))
		return nil, err
	}

	return contribution, nil
}

func (s *Service) GetContribution(ctx context.Context, id uuid.UUID) (*domain.Contribution, error) {
	contribution, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contribution == nil {
		return nil, ErrContributionNotFound
	}
	return contribution, nil
}

func (s *Service) GetMemberContributions(ctx context.Context, memberID uuid.UUID) ([]domain.Contribution, error) {
	contributions, err := s.repo.FindByMemberID(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to get member contributions", zap.Error(err))
		return nil, err
	}
	return contributions, nil
}

func (s *Service) GetContributionsByStatus(ctx context.Context, status string) ([]domain.Contribution, error) {
	contributions, err := s.repo.FindByStatus(ctx, status)
	if err != nil {
		zap.L().Error("failed to get contributions by status", zap.Error(err))
		return nil, err
	}
	return contributions, nil
}

// ValidateContribution moves a pending contribution to VALIDATED, or to FAILED
// with the first violated rule recorded in validation_message. A business-rule
// failure is not an error to the caller: it is captured on the row. After a
// successful transition the owner's eligibility is re-evaluated; a failure
// there is logged and never unwinds the already persisted transition.
func (s *Service) ValidateContribution(ctx context.Context, id uuid.UUID) error {
	contribution, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if contribution == nil {
		return ErrContributionNotFound
	}
	if contribution.Status != domain.PendingContributionStatus {
		return ErrContributionNotPending
	}

	status := domain.ValidatedContributionStatus
	message := ""
	switch {
	case contribution.Amount <= 0:
		status = domain.FailedContributionStatus
		message = invalidAmountMessage
	case contribution.ContributionDate.After(time.Now()):
		status = domain.FailedContributionStatus
		message = futureDateMessage
	}

	contribution.Status = status
	contribution.ValidationMessage = message
	if err := s.repo.Update(ctx, contribution); err != nil {
		s.failContribution(ctx, contribution, "Validation error: "+err.Error())
		return err
	}

	if status == domain.FailedContributionStatus {
		zap.L().Info("contribution failed validation",
			zap.String("contribution_id", contribution.ID.String()),
			zap.String("reason", message),
		)
		return nil
	}

	if err := s.eligibility.EvaluateEligibility(ctx, contribution.MemberID); err != nil {
		zap.L().Error("failed to re-evaluate eligibility after validation",
			zap.String("member_id", contribution.MemberID.String()),
			zap.Error(err),
		)
	}
	return nil
}

// ProcessContribution moves a validated contribution to PROCESSED.
func (s *Service) ProcessContribution(ctx context.Context, id uuid.UUID) error {
	contribution, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if contribution == nil {
		return ErrContributionNotFound
	}
	if contribution.Status != domain.ValidatedContributionStatus {
		return ErrContributionNotValidated
	}

	contribution.Status = domain.ProcessedContributionStatus
	if err := s.repo.Update(ctx, contribution); err != nil {
		s.failContribution(ctx, contribution, "Processing error: "+err.Error())
		return err
	}
	return nil
}

// AccrueInterest computes and records interest exactly once for a processed
// contribution. interest_calculation_date set means the accrual already ran.
func (s *Service) AccrueInterest(ctx context.Context, id uuid.UUID) error {
	contribution, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if contribution == nil {
		return ErrContributionNotFound
	}
	if contribution.Status != domain.ProcessedContributionStatus {
		return ErrContributionNotProcessed
	}
	if contribution.InterestCalculationDate != nil {
		return ErrInterestAlreadyAccrued
	}

	now := time.Now()
	daysHeld := int(now.Sub(contribution.ContributionDate).Hours() / 24)
	monthsHeld := float64(daysHeld) / daysPerMonth
	interest := contribution.Amount * (annualInterestRate / 12) * monthsHeld

	contribution.InterestEarned = &interest
	contribution.InterestCalculationDate = &now
	if err := s.repo.Update(ctx, contribution); err != nil {
		zap.L().Error("failed to record accrued interest", zap.Error(err))
		return err
	}

	zap.L().Info("interest accrued",
		zap.String("contribution_id", contribution.ID.String()),
		zap.Float64("interest", interest),
	)
	return nil
}

func (s *Service) GetTotalForPeriod(ctx context.Context, memberID uuid.UUID, start, end time.Time) (float64, error) {
	total, err := s.repo.SumForPeriod(ctx, memberID, start, end)
	if err != nil {
		zap.L().Error("failed to sum contributions for period", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (s *Service) HasMonthlyContribution(ctx context.Context, memberID uuid.UUID, date time.Time) (bool, error) {
	has, err := s.repo.HasMonthlyContribution(ctx, memberID, date)
	if err != nil {
		zap.L().Error("failed to check monthly contribution", zap.Error(err))
		return false, err
	}
	return has, nil
}

// failContribution force-sets FAILED with a diagnostic message after a
// store-level failure mid-transition. Best effort: the triggering error is
// what propagates to the caller.
func (s *Service) failContribution(ctx context.Context, c *domain.Contribution, message string) {
	c.Status = domain.FailedContributionStatus
	c.ValidationMessage = message
	if err := s.repo.Update(ctx, c); err != nil {
		zap.L().Error("failed to mark contribution as failed",
			zap.String("contribution_id", c.ID.String()),
			zap.Error(err),
		)
	}
}
