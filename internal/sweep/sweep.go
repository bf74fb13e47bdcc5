package sweep

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Mannypulator/eps/internal/config"
	"github.com/Mannypulator/eps/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=sweep.go -destination=mock_sweep.go -package=sweep

type ContributionService interface {
	GetContributionsByStatus(ctx context.Context, status string) ([]domain.Contribution, error)
	ValidateContribution(ctx context.Context, id uuid.UUID) error
	ProcessContribution(ctx context.Context, id uuid.UUID) error
	AccrueInterest(ctx context.Context, id uuid.UUID) error
}

type MemberService interface {
	GetMembers(ctx context.Context) ([]domain.Member, error)
	EvaluateEligibility(ctx context.Context, memberID uuid.UUID) error
}

// inFlight serializes work per entity: an item already being swept is skipped,
// so two passes never touch the same contribution or member concurrently.
var inFlight sync.Map

// Service runs the three recurring batch passes: contribution
// validation+processing (hourly by default), interest accrual (daily) and
// eligibility re-evaluation (daily, offset so it never shares a tick with the
// interest pass). Items are handled independently; one bad item is logged and
// skipped, never aborting the rest of the batch.
type Service struct {
	contributions ContributionService
	members       MemberService
	workerPool    WorkerPoolI

	contributionInterval time.Duration
	interestInterval     time.Duration
	eligibilityInterval  time.Duration
	eligibilityOffset    time.Duration
}

func New(cfg *config.Config, contributions ContributionService, members MemberService) *Service {
	return &Service{
		contributions:        contributions,
		members:              members,
		workerPool:           NewWorkerPool(10),
		contributionInterval: cfg.ContributionSweepInterval,
		interestInterval:     cfg.InterestSweepInterval,
		eligibilityInterval:  cfg.EligibilitySweepInterval,
		eligibilityOffset:    cfg.EligibilitySweepOffset,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Sweep service started")
	go s.loop(ctx, "contributions", s.contributionInterval, 0, s.SweepContributions)
	go s.loop(ctx, "interest", s.interestInterval, 0, s.SweepInterest)
	go s.loop(ctx, "eligibility", s.eligibilityInterval, s.eligibilityOffset, s.SweepEligibility)
}

func (s *Service) loop(ctx context.Context, name string, interval, offset time.Duration, sweep func(ctx context.Context)) {
	if offset > 0 {
		select {
		case <-ctx.Done():
			return
		case <-time.After(offset):
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweep", zap.String("sweep", name))
			return
		case <-ticker.C:
			sweep(ctx)
		}
	}
}

// SweepContributions validates all pending contributions, then processes all
// validated ones. The two phases are independent: a contribution validated in
// this pass may not be processed until the next one.
func (s *Service) SweepContributions(ctx context.Context) {
	pending, err := s.contributions.GetContributionsByStatus(ctx, domain.PendingContributionStatus)
	if err != nil {
		zap.L().Error("Failed to fetch pending contributions", zap.Error(err))
		return
	}
	s.forEach(ctx, contributionIDs(pending), "validate contribution", s.contributions.ValidateContribution)

	validated, err := s.contributions.GetContributionsByStatus(ctx, domain.ValidatedContributionStatus)
	if err != nil {
		zap.L().Error("Failed to fetch validated contributions", zap.Error(err))
		return
	}
	s.forEach(ctx, contributionIDs(validated), "process contribution", s.contributions.ProcessContribution)
}

// SweepInterest accrues interest on processed contributions that have none
// recorded yet. Rows with interest_calculation_date set are skipped, which
// keeps the pass idempotent.
func (s *Service) SweepInterest(ctx context.Context) {
	processed, err := s.contributions.GetContributionsByStatus(ctx, domain.ProcessedContributionStatus)
	if err != nil {
		zap.L().Error("Failed to fetch processed contributions", zap.Error(err))
		return
	}

	var ids []uuid.UUID
	for _, c := range processed {
		if c.InterestCalculationDate != nil {
			continue
		}
		ids = append(ids, c.ID)
	}
	s.forEach(ctx, ids, "accrue interest for contribution", s.contributions.AccrueInterest)
}

// SweepEligibility re-evaluates benefit eligibility for every member. The
// evaluator writes nothing when the determination is unchanged, so re-running
// the pass on an unchanged dataset produces no writes.
func (s *Service) SweepEligibility(ctx context.Context) {
	members, err := s.members.GetMembers(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch members for eligibility sweep", zap.Error(err))
		return
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}
	s.forEach(ctx, ids, "evaluate eligibility for member", s.members.EvaluateEligibility)
}

func (s *Service) forEach(ctx context.Context, ids []uuid.UUID, action string, fn func(ctx context.Context, id uuid.UUID) error) {
	var g errgroup.Group
	for _, id := range ids {
		id := id

		if _, loaded := inFlight.LoadOrStore(id, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inFlight.Delete(id)
				if err := fn(ctx, id); err != nil {
					return fmt.Errorf("can't %s %s: %w", action, id, err)
				}
				return nil
			})
			if err != nil {
				inFlight.Delete(id)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error scheduling sweep tasks", zap.Error(err))
	}
}

func contributionIDs(contributions []domain.Contribution) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(contributions))
	for _, c := range contributions {
		ids = append(ids, c.ID)
	}
	return ids
}
