package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateContributionRequestDTO struct {
	MemberID             uuid.UUID `json:"member_id" example:"6ba7b810-9dad-11d1-80b4-00c04fd430c8"`
	Amount               float64   `json:"amount" example:"10000"`
	ContributionDate     time.Time `json:"contribution_date" example:"2025-06-01T00:00:00Z"`
	Type                 string    `json:"type" example:"MONTHLY"`
	TransactionReference string    `json:"transaction_reference" example:"TX-2025-0001"`
}

type ContributionResponseDTO struct {
	ID                      uuid.UUID  `json:"id"`
	MemberID                uuid.UUID  `json:"member_id"`
	Amount                  float64    `json:"amount"`
	ContributionDate        time.Time  `json:"contribution_date"`
	Type                    string     `json:"type" example:"MONTHLY"`
	TransactionReference    string     `json:"transaction_reference,omitempty"`
	Status                  string     `json:"status" example:"PENDING"`
	ValidationMessage       string     `json:"validation_message,omitempty"`
	InterestEarned          *float64   `json:"interest_earned,omitempty"`
	InterestCalculationDate *time.Time `json:"interest_calculation_date,omitempty"`
}

type PeriodTotalResponseDTO struct {
	MemberID uuid.UUID `json:"member_id"`
	Total    float64   `json:"total" example:"30000"`
}

type MonthlyCheckResponseDTO struct {
	MemberID        uuid.UUID `json:"member_id"`
	HasContribution bool      `json:"has_contribution"`
}
