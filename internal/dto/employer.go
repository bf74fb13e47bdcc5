package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateEmployerRequestDTO struct {
	CompanyName        string `json:"company_name" example:"Acme Pensions Ltd"`
	RegistrationNumber string `json:"registration_number" example:"RC-123456"`
	ContactPerson      string `json:"contact_person" example:"John Smith"`
	ContactEmail       string `json:"contact_email" example:"hr@acme.example.com"`
	ContactPhone       string `json:"contact_phone" example:"+2348098765432"`
	Address            string `json:"address"`
}

type UpdateEmployerRequestDTO struct {
	CompanyName        string `json:"company_name"`
	RegistrationNumber string `json:"registration_number"`
	ContactPerson      string `json:"contact_person"`
	ContactEmail       string `json:"contact_email"`
	ContactPhone       string `json:"contact_phone"`
	Address            string `json:"address"`
	IsActive           bool   `json:"is_active"`
}

type EmployerResponseDTO struct {
	ID                 uuid.UUID `json:"id"`
	CompanyName        string    `json:"company_name"`
	RegistrationNumber string    `json:"registration_number"`
	ContactPerson      string    `json:"contact_person"`
	ContactEmail       string    `json:"contact_email"`
	ContactPhone       string    `json:"contact_phone"`
	Address            string    `json:"address"`
	IsActive           bool      `json:"is_active"`
	RegistrationDate   time.Time `json:"registration_date"`
}
