package memberrepo

import (
	"context"
	"errors"

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

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	query := `
        SELECT id, first_name, last_name, date_of_birth, email, phone, employer_id,
               is_eligible_for_benefits, benefits_eligibility_date, created_at
        FROM members
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var m domain.Member
	err := row.Scan(&m.ID, &m.FirstName, &m.LastName, &m.DateOfBirth, &m.Email, &m.Phone, &m.EmployerID,
		&m.IsEligibleForBenefits, &m.BenefitsEligibilityDate, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find member", zap.Error(err))
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Save(ctx context.Context, m *domain.Member) error {
	query := `
        INSERT INTO members (id, first_name, last_name, date_of_birth, email, phone, employer_id,
                             is_eligible_for_benefits, benefits_eligibility_date, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, m.ID, m.FirstName, m.LastName, m.DateOfBirth, m.Email, m.Phone,
			m.EmployerID, m.IsEligibleForBenefits, m.BenefitsEligibilityDate, m.CreatedAt)
		if err != nil {
			zap.L().Error("can't save member", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, m *domain.Member) error {
	query := `
        UPDATE members
        SET first_name = $1, last_name = $2, date_of_birth = $3, email = $4, phone = $5,
            employer_id = $6, is_eligible_for_benefits = $7, benefits_eligibility_date = $8
        WHERE id = $9
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, m.FirstName, m.LastName, m.DateOfBirth, m.Email, m.Phone,
			m.EmployerID, m.IsEligibleForBenefits, m.BenefitsEligibilityDate, m.ID)
		if err != nil {
			zap.L().Error("failed to update member", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
        DELETE FROM members
        WHERE id = $1
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, id)
		if err != nil {
			zap.L().Error("failed to delete member", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Member, error) {
	query := `
        SELECT id, first_name, last_name, date_of_birth, email, phone, employer_id,
               is_eligible_for_benefits, benefits_eligibility_date, created_at
        FROM members
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get members", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanMembers(rows)
}

func (r *Repository) FindByEmployerID(ctx context.Context, employerID uuid.UUID) ([]domain.Member, error) {
	query := `
        SELECT id, first_name, last_name, date_of_birth, email, phone, employer_id,
               is_eligible_for_benefits, benefits_eligibility_date, created_at
        FROM members
        WHERE employer_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, employerID)
	if err != nil {
		zap.L().Error("can't get members by employer", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanMembers(rows)
}

// IsEmailUnique reports whether no other member uses the email. Pass uuid.Nil
// as excludeID when creating, or the member's own ID when updating.
func (r *Repository) IsEmailUnique(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	query := `
        SELECT NOT EXISTS (
            SELECT 1 FROM members WHERE email = $1 AND id <> $2
        )
    `
	row := r.db.QueryRow(ctx, query, email, excludeID)

	var unique bool
	if err := row.Scan(&unique); err != nil {
		zap.L().Error("can't check email uniqueness", zap.Error(err))
		return false, err
	}
	return unique, nil
}

func (r *Repository) IsPhoneUnique(ctx context.Context, phone string, excludeID uuid.UUID) (bool, error) {
	query := `
        SELECT NOT EXISTS (
            SELECT 1 FROM members WHERE phone = $1 AND id <> $2
        )
    `
	row := r.db.QueryRow(ctx, query, phone, excludeID)

	var unique bool
	if err := row.Scan(&unique); err != nil {
		zap.L().Error("can't check phone uniqueness", zap.Error(err))
		return false, err
	}
	return unique, nil
}

func (r *Repository) SumContributions(ctx context.Context, memberID uuid.UUID) (float64, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM contributions
        WHERE member_id = $1
    `
	row := r.db.QueryRow(ctx, query, memberID)

	var total float64
	if err := row.Scan(&total); err != nil {
		zap.L().Error("can't sum member contributions", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// CountContributionMonths counts distinct calendar year/month pairs across the
// member's contributions, the tenure proxy behind the eligibility rule.
func (r *Repository) CountContributionMonths(ctx context.Context, memberID uuid.UUID) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM (
            SELECT DISTINCT date_trunc('month', contribution_date)
            FROM contributions
            WHERE member_id = $1
        ) AS months
    `
	row := r.db.QueryRow(ctx, query, memberID)

	var count int
	if err := row.Scan(&count); err != nil {
		zap.L().Error("can't count contribution months", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func scanMembers(rows pgx.Rows) ([]domain.Member, error) {
	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.DateOfBirth, &m.Email, &m.Phone, &m.EmployerID,
			&m.IsEligibleForBenefits, &m.BenefitsEligibilityDate, &m.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan member row", zap.Error(err))
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}
