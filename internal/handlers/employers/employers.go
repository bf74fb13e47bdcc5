package employers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Mannypulator/eps/internal/domain"
	"github.com/Mannypulator/eps/internal/dto"
	employerservice "github.com/Mannypulator/eps/internal/service/employerservice"
	"github.com/Mannypulator/eps/pkg/utils"
)

//go:generate mockgen -source=employers.go -destination=mock_employers.go -package=employers

type Service interface {
	CreateEmployer(ctx context.Context, employer *domain.Employer) (*domain.Employer, error)
	GetEmployer(ctx context.Context, id uuid.UUID) (*domain.Employer, error)
	GetEmployers(ctx context.Context) ([]domain.Employer, error)
	UpdateEmployer(ctx context.Context, employer *domain.Employer) (*domain.Employer, error)
	DeactivateEmployer(ctx context.Context, id uuid.UUID) error
}

type EmployerHandler struct {
	employerService Service
}

func New(employerService Service) *EmployerHandler {
	return &EmployerHandler{
		employerService: employerService,
	}
}

// Create godoc
//
//	@Summary		Register a new employer
//	@Description	Register an employer. The registration number must be unique; the employer starts active.
//	@Tags			Employers
//	@Accept			json
//	@Produce		json
//	@Param			employer	body		dto.CreateEmployerRequestDTO	true	"Employer to register"
//	@Success		201			{object}	dto.EmployerResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		409			{object}	utils.Response	"Registration number already registered"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/employers [post]
func (h *EmployerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	employer := &domain.Employer{
		CompanyName:        req.CompanyName,
		RegistrationNumber: req.RegistrationNumber,
		ContactPerson:      req.ContactPerson,
		ContactEmail:       req.ContactEmail,
		ContactPhone:       req.ContactPhone,
		Address:            req.Address,
	}
	created, err := h.employerService.CreateEmployer(r.Context(), employer)
	if err != nil {
		respondEmployerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toEmployerDTO(*created))
}

// Get godoc
//
//	@Summary	Get an employer by ID
//	@Tags		Employers
//	@Produce	json
//	@Param		id	path		string	true	"Employer ID"
//	@Success	200	{object}	dto.EmployerResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid employer ID"
//	@Failure	404	{object}	utils.Response	"Employer not found"
//	@Router		/api/employers/{id} [get]
func (h *EmployerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid employer ID")
		return
	}

	employer, err := h.employerService.GetEmployer(r.Context(), id)
	if err != nil {
		respondEmployerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toEmployerDTO(*employer))
}

// GetAll godoc
//
//	@Summary	List all employers
//	@Tags		Employers
//	@Produce	json
//	@Success	200	{array}		dto.EmployerResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/employers [get]
func (h *EmployerHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	employers, err := h.employerService.GetEmployers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	dtos := make([]dto.EmployerResponseDTO, 0, len(employers))
	for _, employer := range employers {
		dtos = append(dtos, toEmployerDTO(employer))
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos)
}

// Update godoc
//
//	@Summary	Update an employer
//	@Tags		Employers
//	@Accept		json
//	@Produce	json
//	@Param		id			path		string							true	"Employer ID"
//	@Param		employer	body		dto.UpdateEmployerRequestDTO	true	"New employer details"
//	@Success	200			{object}	dto.EmployerResponseDTO
//	@Failure	400			{object}	utils.Response	"Invalid request"
//	@Failure	404			{object}	utils.Response	"Employer not found"
//	@Failure	409			{object}	utils.Response	"Registration number already registered"
//	@Router		/api/employers/{id} [put]
func (h *EmployerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid employer ID")
		return
	}
	var req dto.UpdateEmployerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	employer := &domain.Employer{
		ID:                 id,
		CompanyName:        req.CompanyName,
		RegistrationNumber: req.RegistrationNumber,
		ContactPerson:      req.ContactPerson,
		ContactEmail:       req.ContactEmail,
		ContactPhone:       req.ContactPhone,
		Address:            req.Address,
		IsActive:           req.IsActive,
	}
	updated, err := h.employerService.UpdateEmployer(r.Context(), employer)
	if err != nil {
		respondEmployerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toEmployerDTO(*updated))
}

// Deactivate godoc
//
//	@Summary		Deactivate an employer
//	@Description	Marks the employer inactive. New members can no longer register under it; existing members are unaffected.
//	@Tags			Employers
//	@Produce		json
//	@Param			id	path	string	true	"Employer ID"
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Invalid employer ID"
//	@Failure		404	{object}	utils.Response	"Employer not found"
//	@Router			/api/employers/{id} [delete]
func (h *EmployerHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid employer ID")
		return
	}

	if err := h.employerService.DeactivateEmployer(r.Context(), id); err != nil {
		respondEmployerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondEmployerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, employerservice.ErrEmployerNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, employerservice.ErrRegistrationTaken):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toEmployerDTO(e domain.Employer) dto.EmployerResponseDTO {
	return dto.EmployerResponseDTO{
		ID:                 e.ID,
		CompanyName:        e.CompanyName,
		RegistrationNumber: e.RegistrationNumber,
		ContactPerson:      e.ContactPerson,
		ContactEmail:       e.ContactEmail,
		ContactPhone:       e.ContactPhone,
		Address:            e.Address,
		IsActive:           e.IsActive,
		RegistrationDate:   e.RegistrationDate,
	}
}
