package handlers

import (
	"net/http"

	_ "github.com/Mannypulator/eps/docs"
	contributionhandlers "github.com/Mannypulator/eps/internal/handlers/contributions"
	employerhandlers "github.com/Mannypulator/eps/internal/handlers/employers"
	memberhandlers "github.com/Mannypulator/eps/internal/handlers/members"
	"github.com/Mannypulator/eps/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type MemberHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetAll(w http.ResponseWriter, r *http.Request)
	GetByEmployer(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GetTotal(w http.ResponseWriter, r *http.Request)
	CheckEligibility(w http.ResponseWriter, r *http.Request)
	EvaluateEligibility(w http.ResponseWriter, r *http.Request)
	GetEligibilityHistory(w http.ResponseWriter, r *http.Request)
}

type EmployerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetAll(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type ContributionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetByMember(w http.ResponseWriter, r *http.Request)
	GetByStatus(w http.ResponseWriter, r *http.Request)
	Validate(w http.ResponseWriter, r *http.Request)
	Process(w http.ResponseWriter, r *http.Request)
	CalculateInterest(w http.ResponseWriter, r *http.Request)
	GetMemberTotal(w http.ResponseWriter, r *http.Request)
	CheckMonthly(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	MemberHandler       MemberHandler
	EmployerHandler     EmployerHandler
	ContributionHandler ContributionHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		MemberHandler:       memberhandlers.New(s.MemberService),
		EmployerHandler:     employerhandlers.New(s.EmployerService),
		ContributionHandler: contributionhandlers.New(s.ContributionService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/members", func(r chi.Router) {
			r.Post("/", h.MemberHandler.Create)
			r.Get("/", h.MemberHandler.GetAll)
			r.Get("/employer/{employerID}", h.MemberHandler.GetByEmployer)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.MemberHandler.Get)
				r.Put("/", h.MemberHandler.Update)
				r.Delete("/", h.MemberHandler.Delete)
				r.Get("/total", h.MemberHandler.GetTotal)
				r.Get("/eligibility", h.MemberHandler.CheckEligibility)
				r.Post("/eligibility/evaluate", h.MemberHandler.EvaluateEligibility)
				r.Get("/eligibility/history", h.MemberHandler.GetEligibilityHistory)
			})
		})
		r.Route("/employers", func(r chi.Router) {
			r.Post("/", h.EmployerHandler.Create)
			r.Get("/", h.EmployerHandler.GetAll)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.EmployerHandler.Get)
				r.Put("/", h.EmployerHandler.Update)
				r.Delete("/", h.EmployerHandler.Deactivate)
			})
		})
		r.Route("/contributions", func(r chi.Router) {
			r.Post("/", h.ContributionHandler.Create)
			r.Get("/status/{status}", h.ContributionHandler.GetByStatus)
			r.Route("/member/{memberID}", func(r chi.Router) {
				r.Get("/", h.ContributionHandler.GetByMember)
				r.Get("/total", h.ContributionHandler.GetMemberTotal)
				r.Get("/validate-monthly", h.ContributionHandler.CheckMonthly)
			})
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.ContributionHandler.Get)
				r.Post("/validate", h.ContributionHandler.Validate)
				r.Post("/process", h.ContributionHandler.Process)
				r.Post("/calculate-interest", h.ContributionHandler.CalculateInterest)
			})
		})
	})

	return r
}
