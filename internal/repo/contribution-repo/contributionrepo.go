package contributionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Mannypulator/eps/internal/domain"
	"github.com/Mannypulator/eps/internal/pg"
	"go.uber.org/zap"
)

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

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Contribution, error) {
	query := `
        SELECT id, member_id, amount, contribution_date, type, transaction_reference,
               status, validation_message, interest_earned, interest_calculation_date, created_at
        FROM contributions
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var c domain.Contribution
	err := row.Scan(&c.ID, &c.MemberID, &c.Amount, &c.ContributionDate, &c.Type, &c.TransactionReference,
		&c.Status, &c.ValidationMessage, &c.InterestEarned, &c.InterestCalculationDate, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find contribution", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Save(ctx context.Context, c *domain.Contribution) error {
	query := `
        INSERT INTO contributions (id, member_id, amount, contribution_date, type,
                                   transaction_reference, status, validation_message, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, c.ID, c.MemberID, c.Amount, c.ContributionDate, c.Type,
			c.TransactionReference, c.Status, c.ValidationMessage, c.CreatedAt)
		if err != nil {
			zap.L().Error("can't save contribution", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, c *domain.Contribution) error {
	query := `
        UPDATE contributions
        SET status = $1, validation_message = $2, interest_earned = $3, interest_calculation_date = $4
        WHERE id = $5
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, c.Status, c.ValidationMessage, c.InterestEarned, c.InterestCalculationDate, c.ID)
		if err != nil {
			zap.L().Error("failed to update contribution", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByMemberID(ctx context.Context, memberID uuid.UUID) ([]domain.Contribution, error) {
	query := `
        SELECT id, member_id, amount, contribution_date, type, transaction_reference,
               status, validation_message, interest_earned, interest_calculation_date, created_at
        FROM contributions
        WHERE member_id = $1
        ORDER BY contribution_date DESC
    `
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		zap.L().Error("can't get member contributions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanContributions(rows)
}

func (r *Repository) FindByStatus(ctx context.Context, status string) ([]domain.Contribution, error) {
	query := `
        SELECT id, member_id, amount, contribution_date, type, transaction_reference,
               status, validation_message, interest_earned, interest_calculation_date, created_at
        FROM contributions
        WHERE status = $1
        ORDER BY contribution_date ASC
    `
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		zap.L().Error("can't get contributions by status", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanContributions(rows)
}

func (r *Repository) SumForPeriod(ctx context.Context, memberID uuid.UUID, start, end time.Time) (float64, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM contributions
        WHERE member_id = $1 AND contribution_date >= $2 AND contribution_date <= $3
    `
	row := r.db.QueryRow(ctx, query, memberID, start, end)

	var total float64
	if err := row.Scan(&total); err != nil {
		zap.L().Error("can't sum contributions for period", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) HasMonthlyContribution(ctx context.Context, memberID uuid.UUID, date time.Time) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1
            FROM contributions
            WHERE member_id = $1
              AND type = $2
              AND date_trunc('month', contribution_date) = date_trunc('month', $3::timestamptz)
        )
    `
	row := r.db.QueryRow(ctx, query, memberID, domain.MonthlyContributionType, date)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		zap.L().Error("can't check monthly contribution", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func scanContributions(rows pgx.Rows) ([]domain.Contribution, error) {
	var contributions []domain.Contribution
	for rows.Next() {
		var c domain.Contribution
		err := rows.Scan(&c.ID, &c.MemberID, &c.Amount, &c.ContributionDate, &c.Type, &c.TransactionReference,
			&c.Status, &c.ValidationMessage, &c.InterestEarned, &c.InterestCalculationDate, &c.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan contribution row", zap.Error(err))
			return nil, err
		}
		contributions = append(contributions, c)
	}
	return contributions, nil
}
