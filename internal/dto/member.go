package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMemberRequestDTO struct {
	FirstName   string    `json:"first_name" example:"Jane"`
	LastName    string    `json:"last_name" example:"Doe"`
	DateOfBirth time.Time `json:"date_of_birth" example:"1985-04-12T00:00:00Z"`
	Email       string    `json:"email" example:"jane.doe@example.com"`
	Phone       string    `json:"phone" example:"+2348012345678"`
	EmployerID  uuid.UUID `json:"employer_id" example:"6ba7b810-9dad-11d1-80b4-00c04fd430c8"`
}

type UpdateMemberRequestDTO struct {
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	EmployerID  uuid.UUID `json:"employer_id"`
}

type MemberResponseDTO struct {
	ID                      uuid.UUID  `json:"id"`
	FirstName               string     `json:"first_name"`
	LastName                string     `json:"last_name"`
	DateOfBirth             time.Time  `json:"date_of_birth"`
	Email                   string     `json:"email"`
	Phone                   string     `json:"phone"`
	EmployerID              uuid.UUID  `json:"employer_id"`
	IsEligibleForBenefits   bool       `json:"is_eligible_for_benefits"`
	BenefitsEligibilityDate *time.Time `json:"benefits_eligibility_date,omitempty"`
}

type MemberTotalResponseDTO struct {
	MemberID uuid.UUID `json:"member_id"`
	Total    float64   `json:"total" example:"52000"`
}

type EligibilityResponseDTO struct {
	MemberID   uuid.UUID `json:"member_id"`
	IsEligible bool      `json:"is_eligible"`
}

type EligibilityHistoryResponseDTO struct {
	ID                 uuid.UUID `json:"id"`
	IsEligible         bool      `json:"is_eligible"`
	EvaluationDate     time.Time `json:"evaluation_date"`
	TotalContributions float64   `json:"total_contributions"`
	ContributionMonths int       `json:"contribution_months"`
	Reason             string    `json:"reason" example:"Met eligibility criteria"`
}
