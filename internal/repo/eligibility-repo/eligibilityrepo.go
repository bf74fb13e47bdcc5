package eligibilityrepo

import (
	"context"

	"github.com/google/uuid"

	"github.com/Mannypulator/eps/internal/domain"
	"github.com/Mannypulator/eps/internal/pg"
	"go.uber.org/zap"
)

// Repository is insert-only: eligibility history is an audit trail and rows
// are never updated or deleted once written.
type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Append(ctx context.Context, h *domain.BenefitEligibilityHistory) error {
	query := `
        INSERT INTO benefit_eligibility_history (id, member_id, is_eligible, evaluation_date,
                                                 total_contributions, contribution_months, reason)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, h.ID, h.MemberID, h.IsEligible, h.EvaluationDate,
			h.TotalContributions, h.ContributionMonths, h.Reason)
		if err != nil {
			zap.L().Error("can't append eligibility history", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByMemberID(ctx context.Context, memberID uuid.UUID) ([]domain.BenefitEligibilityHistory, error) {
	query := `
        SELECT id, member_id, is_eligible, evaluation_date, total_contributions, contribution_months, reason
        FROM benefit_eligibility_history
        WHERE member_id = $1
        ORDER BY evaluation_date DESC
    `
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		zap.L().Error("can't get eligibility history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var history []domain.BenefitEligibilityHistory
	for rows.Next() {
		var h domain.BenefitEligibilityHistory
		err := rows.Scan(&h.ID, &h.MemberID, &h.IsEligible, &h.EvaluationDate,
			&h.TotalContributions, &h.ContributionMonths, &h.Reason)
		if err != nil {
			zap.L().Error("can't scan eligibility history row", zap.Error(err))
			return nil, err
		}
		history = append(history, h)
	}
	return history, nil
}
