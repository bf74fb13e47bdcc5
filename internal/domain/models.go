package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// PendingContributionStatus contribution recorded, not yet validated;
	PendingContributionStatus string = "PENDING"
	// ValidatedContributionStatus contribution passed business validation;
	ValidatedContributionStatus string = "VALIDATED"
	// FailedContributionStatus contribution rejected, reason kept in validation_message;
	FailedContributionStatus string = "FAILED"
	// ProcessedContributionStatus contribution posted to the member's account.
	ProcessedContributionStatus string = "PROCESSED"
)

const (
	MonthlyContributionType   string = "MONTHLY"
	VoluntaryContributionType string = "VOLUNTARY"
)

type Member struct {
	ID                      uuid.UUID  `db:"id"`
	FirstName               string     `db:"first_name"`
	LastName                string     `db:"last_name"`
	DateOfBirth             time.Time  `db:"date_of_birth"`
	Email                   string     `db:"email"`
	Phone                   string     `db:"phone"`
	EmployerID              uuid.UUID  `db:"employer_id"`
	IsEligibleForBenefits   bool       `db:"is_eligible_for_benefits"`
	BenefitsEligibilityDate *time.Time `db:"benefits_eligibility_date"`
	CreatedAt               time.Time  `db:"created_at"`
}

type Employer struct {
	ID                 uuid.UUID `db:"id"`
	CompanyName        string    `db:"company_name"`
	RegistrationNumber string    `db:"registration_number"`
	ContactPerson      string    `db:"contact_person"`
	ContactEmail       string    `db:"contact_email"`
	ContactPhone       string    `db:"contact_phone"`
	Address            string    `db:"address"`
	IsActive           bool      `db:"is_active"`
	RegistrationDate   time.Time `db:"registration_date"`
}

type Contribution struct {
	ID                      uuid.UUID  `db:"id"`
	MemberID                uuid.UUID  `db:"member_id"`
	Amount                  float64    `db:"amount"`
	ContributionDate        time.Time  `db:"contribution_date"`
	Type                    string     `db:"type"`
	TransactionReference    string     `db:"transaction_reference"`
	Status                  string     `db:"status"`
	ValidationMessage       string     `db:"validation_message"`
	InterestEarned          *float64   `db:"interest_earned"`
	InterestCalculationDate *time.Time `db:"interest_calculation_date"`
	CreatedAt               time.Time  `db:"created_at"`
}

// BenefitEligibilityHistory is append-only: a row is written each time a
// re-evaluation flips the member's eligibility flag, never updated or deleted.
type BenefitEligibilityHistory struct {
	ID                 uuid.UUID `db:"id"`
	MemberID           uuid.UUID `db:"member_id"`
	IsEligible         bool      `db:"is_eligible"`
	EvaluationDate     time.Time `db:"evaluation_date"`
	TotalContributions float64   `db:"total_contributions"`
	ContributionMonths int       `db:"contribution_months"`
	Reason             string    `db:"reason"`
}
