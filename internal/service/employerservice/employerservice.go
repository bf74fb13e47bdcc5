package employerservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Mannypulator/eps/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employerservice.go -destination=mock_employerservice.go -package=employerservice

type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Employer, error)
	Save(ctx context.Context, e *domain.Employer) error
	Update(ctx context.Context, e *domain.Employer) error
	FindAll(ctx context.Context) ([]domain.Employer, error)
	IsRegistrationNumberUnique(ctx context.Context, number string, excludeID uuid.UUID) (bool, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrEmployerNotFound  = errors.New("employer not found")
	ErrRegistrationTaken = errors.New("registration number is already registered")
)

func (s *Service) CreateEmployer(ctx context.Context, employer *domain.Employer) (*domain.Employer, error) {
	unique, err := s.repo.IsRegistrationNumberUnique(ctx, employer.RegistrationNumber, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if !unique {
		zap.L().Info("employer already registered", zap.String("registration_number", employer.RegistrationNumber))
		return nil, ErrRegistrationTaken
	}

	employer.ID = uuid.New()
	employer.IsActive = true
	employer.RegistrationDate = time.Now()

	if err := s.repo.Save(ctx, employer); err != nil {
		zap.L().Error("can't save employer: ", zap.Error(err))
		return nil, err
	}
	return employer, nil
}

func (s *Service) GetEmployer(ctx context.Context, id uuid.UUID) (*domain.Employer, error) {
	employer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employer == nil {
		return nil, ErrEmployerNotFound
	}
	return employer, nil
}

func (s *Service) GetEmployers(ctx context.Context) ([]domain.Employer, error) {
	employers, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get employers", zap.Error(err))
		return nil, err
	}
	return employers, nil
}

func (s *Service) UpdateEmployer(ctx context.Context, employer *domain.Employer) (*domain.Employer, error) {
	existing, err := s.repo.FindByID(ctx, employer.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrEmployerNotFound
	}

	unique, err := s.repo.IsRegistrationNumberUnique(ctx, employer.RegistrationNumber, employer.ID)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, ErrRegistrationTaken
	}

	existing.CompanyName = employer.CompanyName
	existing.RegistrationNumber = employer.RegistrationNumber
	existing.ContactPerson = employer.ContactPerson
	existing.ContactEmail = employer.ContactEmail
	existing.ContactPhone = employer.ContactPhone
	existing.Address = employer.Address
	existing.IsActive = employer.IsActive

	if err := s.repo.Update(ctx, existing); err != nil {
		zap.L().Error("failed to update employer", zap.Error(err))
		return nil, err
	}
	return existing, nil
}

// DeactivateEmployer blocks new member intake for the employer; existing
// members and their contributions are unaffected.
func (s *Service) DeactivateEmployer(ctx context.Context, id uuid.UUID) error {
	employer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if employer == nil {
		return ErrEmployerNotFound
	}

	employer.IsActive = false
	if err := s.repo.Update(ctx, employer); err != nil {
		zap.L().Error("failed to deactivate employer", zap.Error(err))
		return err
	}
	return nil
}
