package members

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Mannypulator/eps/internal/domain"
	"github.com/Mannypulator/eps/internal/dto"
	memberservice "github.com/Mannypulator/eps/internal/service/memberservice"
	"github.com/Mannypulator/eps/pkg/utils"
)

//go:generate mockgen -source=members.go -destination=mock_members.go -package=members

type Service interface {
	CreateMember(ctx context.Context, member *domain.Member) (*domain.Member, error)
	UpdateMember(ctx context.Context, member *domain.Member) (*domain.Member, error)
	GetMember(ctx context.Context, id uuid.UUID) (*domain.Member, error)
	GetMembers(ctx context.Context) ([]domain.Member, error)
	GetMembersByEmployer(ctx context.Context, employerID uuid.UUID) ([]domain.Member, error)
	DeleteMember(ctx context.Context, id uuid.UUID) error
	GetTotalContributions(ctx context.Context, memberID uuid.UUID) (float64, error)
	GetEligibilityHistory(ctx context.Context, memberID uuid.UUID) ([]domain.BenefitEligibilityHistory, error)
	IsEligibleForBenefits(ctx context.Context, memberID uuid.UUID) (bool, error)
	EvaluateEligibility(ctx context.Context, memberID uuid.UUID) error
}

type MemberHandler struct {
	memberService Service
}

func New(memberService Service) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// Create godoc
//
//	@Summary		Register a new member
//	@Description	Register a pension scheme member under an active employer. Email and phone must be unique.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			member	body		dto.CreateMemberRequestDTO	true	"Member to register"
//	@Success		201		{object}	dto.MemberResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or inactive employer"
//	@Failure		409		{object}	utils.Response	"Email or phone already registered"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/members [post]
func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMemberRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	member := &domain.Member{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
		Email:       req.Email,
		Phone:       req.Phone,
		EmployerID:  req.EmployerID,
	}
	created, err := h.memberService.CreateMember(r.Context(), member)
	if err != nil {
		respondMemberError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toMemberDTO(*created))
}

// Get godoc
//
//	@Summary	Get a member by ID
//	@Tags		Members
//	@Produce	json
//	@Param		id	path		string	true	"Member ID"
//	@Success	200	{object}	dto.MemberResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid member ID"
//	@Failure	404	{object}	utils.Response	"Member not found"
//	@Router		/api/members/{id} [get]
func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid member ID")
		return
	}

	member, err := h.memberService.GetMember(r.Context(), id)
	if err != nil {
		respondMemberError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toMemberDTO(*member))
}

// GetAll godoc
//
//	@Summary	List all members
//	@Tags		Members
//	@Produce	json
//	@Success	200	{array}		dto.MemberResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/members [get]
func (h *MemberHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberService.GetMembers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toMemberDTOs(members))
}

// GetByEmployer godoc
//
//	@Summary	List members registered under an employer
//	@Tags		Members
//	@Produce	json
//	@Param		employerID	path	string	true	"Employer ID"
//	@Success	200	{array}		dto.MemberResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid employer ID"
//	@Router		/api/members/employer/{employerID} [get]
func (h *MemberHandler) GetByEmployer(w http.ResponseWriter, r *http.Request) {
	employerID, err := uuid.Parse(chi.URLParam(r, "employerID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid employer ID")
		return
	}

	members, err := h.memberService.GetMembersByEmployer(r.Context(), employerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toMemberDTOs(members))
}

// Update godoc
//
//	@Summary	Update a member's identity details
//	@Tags		Members
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Member ID"
//	@Param		member	body		dto.UpdateMemberRequestDTO	true	"New member details"
//	@Success	200		{object}	dto.MemberResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request"
//	@Failure	404		{object}	utils.Response	"Member not found"
//	@Failure	409		{object}	utils.Response	"Email or phone already registered"
//	@Router		/api/members/{id} [put]
func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid member ID")
		return
	}
	var req dto.UpdateMemberRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	member := &domain.Member{
		ID:          id,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
		Email:       req.Email,
		Phone:       req.Phone,
		EmployerID:  req.EmployerID,
	}
	updated, err := h.memberService.UpdateMember(r.Context(), member)
	if err != nil {
		respondMemberError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toMemberDTO(*updated))
}

// Delete godoc
//
//	@Summary	Remove a member
//	@Tags		Members
//	@Produce	json
//	@Param		id	path	string	true	"Member ID"
//	@Success	204
//	@Failure	400	{object}	utils.Response	"Invalid member ID"
//	@Failure	404	{object}	utils.Response	"Member not found"
//	@Router		/api/members/{id} [delete]
func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid member ID")
		return
	}

	if err := h.memberService.DeleteMember(r.Context(), id); err != nil {
		respondMemberError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetTotal godoc
//
//	@Summary	Lifetime contribution total for a member
//	@Tags		Members
//	@Produce	json
//	@Param		id	path		string	true	"Member ID"
//	@Success	200	{object}	dto.MemberTotalResponseDTO
//	@Failure	404	{object}	utils.Response	"Member not found"
//	@Router		/api/members/{id}/total [get]
func (h *MemberHandler) GetTotal(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid member ID")
		return
	}

	total, err := h.memberService.GetTotalContributions(r.Context(), id)
	if err != nil {
		respondMemberError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MemberTotalResponseDTO{MemberID: id, Total: total})
}

// CheckEligibility godoc
//
//	@Summary		Check current benefit eligibility
//	@Description	Computes the eligibility determination without changing any stored state.
//	@Tags			Members
//	@Produce		json
//	@Param			id	path		string	true	"Member ID"
//	@Success		200	{object}	dto.EligibilityResponseDTO
//	@Failure		404	{object}	utils.Response	"Member not found"
//	@Router			/api/members/{id}/eligibility [get]
func (h *MemberHandler) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid member ID")
		return
	}

	eligible, err := h.memberService.IsEligibleForBenefits(r.Context(), id)
	if err != nil {
		respondMemberError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.EligibilityResponseDTO{MemberID: id, IsEligible: eligible})
}

// EvaluateEligibility godoc
//
//	@Summary		Re-evaluate and persist benefit eligibility
//	@Description	Recomputes eligibility and, if the determination changed, updates the member and appends an audit history row atomically.
//	@Tags			Members
//	@Produce		json
//	@Param			id	path	string	true	"Member ID"
//	@Success		204
//	@Failure		404	{object}	utils.Response	"Member not found"
//	@Router			/api/members/{id}/eligibility/evaluate [post]
func (h *MemberHandler) EvaluateEligibility(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid member ID")
		return
	}

	if err := h.memberService.EvaluateEligibility(r.Context(), id); err != nil {
		respondMemberError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetEligibilityHistory godoc
//
//	@Summary	Eligibility evaluation history, most recent first
//	@Tags		Members
//	@Produce	json
//	@Param		id	path	string	true	"Member ID"
//	@Success	200	{array}		dto.EligibilityHistoryResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid member ID"
//	@Router		/api/members/{id}/eligibility/history [get]
func (h *MemberHandler) GetEligibilityHistory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid member ID")
		return
	}

	history, err := h.memberService.GetEligibilityHistory(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	dtos := make([]dto.EligibilityHistoryResponseDTO, 0, len(history))
	for _, entry := range history {
		dtos = append(dtos, dto.EligibilityHistoryResponseDTO{
			ID:                 entry.ID,
			IsEligible:         entry.IsEligible,
			EvaluationDate:     entry.EvaluationDate,
			TotalContributions: entry.TotalContributions,
			ContributionMonths: entry.ContributionMonths,
			Reason:             entry.Reason,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos)
}

func respondMemberError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, memberservice.ErrMemberNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, memberservice.ErrEmployerInactive):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, memberservice.ErrEmailTaken), errors.Is(err, memberservice.ErrPhoneTaken):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toMemberDTO(m domain.Member) dto.MemberResponseDTO {
	return dto.MemberResponseDTO{
		ID:                      m.ID,
		FirstName:               m.FirstName,
		LastName:                m.LastName,
		DateOfBirth:             m.DateOfBirth,
		Email:                   m.Email,
		Phone:                   m.Phone,
		EmployerID:              m.EmployerID,
		IsEligibleForBenefits:   m.IsEligibleForBenefits,
		BenefitsEligibilityDate: m.BenefitsEligibilityDate,
	}
}

func toMemberDTOs(members []domain.Member) []dto.MemberResponseDTO {
	dtos := make([]dto.MemberResponseDTO, 0, len(members))
	for _, m := range members {
		dtos = append(dtos, toMemberDTO(m))
	}
	return dtos
}
