package contributions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Mannypulator/eps/internal/domain"
	"github.com/Mannypulator/eps/internal/dto"
	contributionservice "github.com/Mannypulator/eps/internal/service/contributionservice"
	"github.com/Mannypulator/eps/pkg/utils"
)

//go:generate mockgen -source=contributions.go -destination=mock_contributions.go -package=contributions

type Service interface {
	CreateContribution(ctx context.Context, memberID uuid.UUID, amount float64, contributionDate time.Time, contributionType, transactionReference string) (*domain.Contribution, error)
	GetContribution(ctx context.Context, id uuid.UUID) (*domain.Contribution, error)
	GetMemberContributions(ctx context.Context, memberID uuid.UUID) ([]domain.Contribution, error)
	GetContributionsByStatus(ctx context.Context, status string) ([]domain.Contribution, error)
	ValidateContribution(ctx context.Context, id uuid.UUID) error
	ProcessContribution(ctx context.Context, id uuid.UUID) error
	AccrueInterest(ctx context.Context, id uuid.UUID) error
	GetTotalForPeriod(ctx context.Context, memberID uuid.UUID, start, end time.Time) (float64, error)
	HasMonthlyContribution(ctx context.Context, memberID uuid.UUID, date time.Time) (bool, error)
}

type ContributionHandler struct {
	contributionService Service
}

func New(contributionService Service) *ContributionHandler {
	return &ContributionHandler{
		contributionService: contributionService,
	}
}

var knownStatuses = map[string]struct{}{
	domain.PendingContributionStatus:   {},
	domain.ValidatedContributionStatus: {},
	domain.FailedContributionStatus:    {},
	domain.ProcessedContributionStatus: {},
}

var knownTypes = map[string]struct{}{
	domain.MonthlyContributionType:   {},
	domain.VoluntaryContributionType: {},
}

// Create godoc
//
//	@Summary		Record a new contribution
//	@Description	Record a pension contribution for a member. The contribution starts in PENDING status.
//	@Tags			Contributions
//	@Accept			json
//	@Produce		json
//	@Param			contribution	body		dto.CreateContributionRequestDTO	true	"Contribution to record"
//	@Success		201				{object}	dto.ContributionResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid request body"
//	@Failure		404				{object}	utils.Response	"Member not found"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/contributions [post]
func (h *ContributionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateContributionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Amount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Amount must be greater than 0")
		return
	}
	if _, ok := knownTypes[req.Type]; !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid contribution type")
		return
	}

	contribution, err := h.contributionService.CreateContribution(r.Context(), req.MemberID, req.Amount, req.ContributionDate, req.Type, req.TransactionReference)
	if err != nil {
		switch {
		case errors.Is(err, contributionservice.ErrMemberNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toContributionDTO(*contribution))
}

// Get godoc
//
//	@Summary	Get a contribution by ID
//	@Tags		Contributions
//	@Produce	json
//	@Param		id	path		string	true	"Contribution ID"
//	@Success	200	{object}	dto.ContributionResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid contribution ID"
//	@Failure	404	{object}	utils.Response	"Contribution not found"
//	@Router		/api/contributions/{id} [get]
func (h *ContributionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid contribution ID")
		return
	}

	contribution, err := h.contributionService.GetContribution(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, contributionservice.ErrContributionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toContributionDTO(*contribution))
}

// GetByMember godoc
//
//	@Summary	List a member's contributions
//	@Tags		Contributions
//	@Produce	json
//	@Param		memberID	path	string	true	"Member ID"
//	@Success	200	{array}		dto.ContributionResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid member ID"
//	@Router		/api/contributions/member/{memberID} [get]
func (h *ContributionHandler) GetByMember(w http.ResponseWriter, r *http.Request) {
	memberID, err := uuid.Parse(chi.URLParam(r, "memberID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid member ID")
		return
	}

	contributions, err := h.contributionService.GetMemberContributions(r.Context(), memberID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toContributionDTOs(contributions))
}

// GetByStatus godoc
//
//	@Summary	List contributions by status
//	@Tags		Contributions
//	@Produce	json
//	@Param		status	path	string	true	"Contribution status"	Enums(PENDING, VALIDATED, FAILED, PROCESSED)
//	@Success	200	{array}		dto.ContributionResponseDTO
//	@Failure	400	{object}	utils.Response	"Unknown status"
//	@Router		/api/contributions/status/{status} [get]
func (h *ContributionHandler) GetByStatus(w http.ResponseWriter, r *http.Request) {
	status := chi.URLParam(r, "status")
	if _, ok := knownStatuses[status]; !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown contribution status")
		return
	}

	contributions, err := h.contributionService.GetContributionsByStatus(r.Context(), status)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toContributionDTOs(contributions))
}

// Validate godoc
//
//	@Summary		Validate a pending contribution
//	@Description	Run business validation on a pending contribution. A rule violation is recorded on the contribution itself, not returned as an error.
//	@Tags			Contributions
//	@Produce		json
//	@Param			id	path	string	true	"Contribution ID"
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Contribution is not pending"
//	@Failure		404	{object}	utils.Response	"Contribution not found"
//	@Router			/api/contributions/{id}/validate [post]
func (h *ContributionHandler) Validate(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.contributionService.ValidateContribution)
}

// Process godoc
//
//	@Summary	Process a validated contribution
//	@Tags		Contributions
//	@Produce	json
//	@Param		id	path	string	true	"Contribution ID"
//	@Success	204
//	@Failure	400	{object}	utils.Response	"Contribution is not validated"
//	@Failure	404	{object}	utils.Response	"Contribution not found"
//	@Router		/api/contributions/{id}/process [post]
func (h *ContributionHandler) Process(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.contributionService.ProcessContribution)
}

// CalculateInterest godoc
//
//	@Summary		Accrue interest on a processed contribution
//	@Description	One-time interest accrual at 5% per annum, prorated by months held.
//	@Tags			Contributions
//	@Produce		json
//	@Param			id	path	string	true	"Contribution ID"
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Contribution not processed or interest already accrued"
//	@Failure		404	{object}	utils.Response	"Contribution not found"
//	@Router			/api/contributions/{id}/calculate-interest [post]
func (h *ContributionHandler) CalculateInterest(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.contributionService.AccrueInterest)
}

func (h *ContributionHandler) lifecycle(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id uuid.UUID) error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid contribution ID")
		return
	}

	if err := op(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, contributionservice.ErrContributionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, contributionservice.ErrContributionNotPending),
			errors.Is(err, contributionservice.ErrContributionNotValidated),
			errors.Is(err, contributionservice.ErrContributionNotProcessed),
			errors.Is(err, contributionservice.ErrInterestAlreadyAccrued):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetMemberTotal godoc
//
//	@Summary	Total contributions for a member over a period
//	@Tags		Contributions
//	@Produce	json
//	@Param		memberID	path	string	true	"Member ID"
//	@Param		start_date	query	string	true	"Period start (RFC 3339)"
//	@Param		end_date	query	string	true	"Period end (RFC 3339)"
//	@Success	200	{object}	dto.PeriodTotalResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid parameters"
//	@Router		/api/contributions/member/{memberID}/total [get]
func (h *ContributionHandler) GetMemberTotal(w http.ResponseWriter, r *http.Request) {
	memberID, err := uuid.Parse(chi.URLParam(r, "memberID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid member ID")
		return
	}
	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("start_date"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid start_date")
		return
	}
	end, err := time.Parse(time.RFC3339, r.URL.Query().Get("end_date"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid end_date")
		return
	}

	total, err := h.contributionService.GetTotalForPeriod(r.Context(), memberID, start, end)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PeriodTotalResponseDTO{MemberID: memberID, Total: total})
}

// CheckMonthly godoc
//
//	@Summary	Check whether a member already has a monthly contribution in a given month
//	@Tags		Contributions
//	@Produce	json
//	@Param		memberID	path	string	true	"Member ID"
//	@Param		date		query	string	true	"Any date inside the month (RFC 3339)"
//	@Success	200	{object}	dto.MonthlyCheckResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid parameters"
//	@Router		/api/contributions/member/{memberID}/validate-monthly [get]
func (h *ContributionHandler) CheckMonthly(w http.ResponseWriter, r *http.Request) {
	memberID, err := uuid.Parse(chi.URLParam(r, "memberID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid member ID")
		return
	}
	date, err := time.Parse(time.RFC3339, r.URL.Query().Get("date"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date")
		return
	}

	has, err := h.contributionService.HasMonthlyContribution(r.Context(), memberID, date)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MonthlyCheckResponseDTO{MemberID: memberID, HasContribution: has})
}

func toContributionDTO(c domain.Contribution) dto.ContributionResponseDTO {
	return dto.ContributionResponseDTO{
		ID:                      c.ID,
		MemberID:                c.MemberID,
		Amount:                  c.Amount,
		ContributionDate:        c.ContributionDate,
		Type:                    c.Type,
		TransactionReference:    c.TransactionReference,
		Status:                  c.Status,
		ValidationMessage:       c.ValidationMessage,
		InterestEarned:          c.InterestEarned,
		InterestCalculationDate: c.InterestCalculationDate,
	}
}

func toContributionDTOs(contributions []domain.Contribution) []dto.ContributionResponseDTO {
	dtos := make([]dto.ContributionResponseDTO, 0, len(contributions))
	for _, c := range contributions {
		dtos = append(dtos, toContributionDTO(c))
	}
	return dtos
}
