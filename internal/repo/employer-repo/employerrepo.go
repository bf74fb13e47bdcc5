package employerrepo

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

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Employer, error) {
	query := `
        SELECT id, company_name, registration_number, contact_person, contact_email,
               contact_phone, address, is_active, registration_date
        FROM employers
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var e domain.Employer
	err := row.Scan(&e.ID, &e.CompanyName, &e.RegistrationNumber, &e.ContactPerson, &e.ContactEmail,
		&e.ContactPhone, &e.Address, &e.IsActive, &e.RegistrationDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find employer", zap.Error(err))
		return nil, err
	}
	return &e, nil
}

func (r *Repository) Save(ctx context.Context, e *domain.Employer) error {
	query := `
        INSERT INTO employers (id, company_name, registration_number, contact_person, contact_email,
                               contact_phone, address, is_active, registration_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, e.ID, e.CompanyName, e.RegistrationNumber, e.ContactPerson,
			e.ContactEmail, e.ContactPhone, e.Address, e.IsActive, e.RegistrationDate)
		if err != nil {
			zap.L().Error("can't save employer", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, e *domain.Employer) error {
	query := `
        UPDATE employers
        SET company_name = $1, registration_number = $2, contact_person = $3, contact_email = $4,
            contact_phone = $5, address = $6, is_active = $7
        WHERE id = $8
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, e.CompanyName, e.RegistrationNumber, e.ContactPerson,
			e.ContactEmail, e.ContactPhone, e.Address, e.IsActive, e.ID)
		if err != nil {
			zap.L().Error("failed to update employer", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Employer, error) {
	query := `
        SELECT id, company_name, registration_number, contact_person, contact_email,
               contact_phone, address, is_active, registration_date
        FROM employers
        ORDER BY registration_date ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get employers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var employers []domain.Employer
	for rows.Next() {
		var e domain.Employer
		err := rows.Scan(&e.ID, &e.CompanyName, &e.RegistrationNumber, &e.ContactPerson, &e.ContactEmail,
			&e.ContactPhone, &e.Address, &e.IsActive, &e.RegistrationDate)
		if err != nil {
			zap.L().Error("can't scan employer row", zap.Error(err))
			return nil, err
		}
		employers = append(employers, e)
	}
	return employers, nil
}

func (r *Repository) IsRegistrationNumberUnique(ctx context.Context, number string, excludeID uuid.UUID) (bool, error) {
	query := `
        SELECT NOT EXISTS (
            SELECT 1 FROM employers WHERE registration_number = $1 AND id <> $2
        )
    `
	row := r.db.QueryRow(ctx, query, number, excludeID)

	var unique bool
	if err := row.Scan(&unique); err != nil {
		zap.L().Error("can't check registration number uniqueness", zap.Error(err))
		return false, err
	}
	return unique, nil
}
