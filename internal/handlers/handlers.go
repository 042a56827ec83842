package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/D1yWeb/S2C/docs"
	affiliatehandlers "github.com/D1yWeb/S2C/internal/handlers/affiliate"
	authhandlers "github.com/D1yWeb/S2C/internal/handlers/auth"
	creditshandlers "github.com/D1yWeb/S2C/internal/handlers/credits"
	projectshandlers "github.com/D1yWeb/S2C/internal/handlers/projects"
	teamhandlers "github.com/D1yWeb/S2C/internal/handlers/team"
	"github.com/D1yWeb/S2C/internal/service"
	"github.com/D1yWeb/S2C/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	UpdateName(w http.ResponseWriter, r *http.Request)
}

type AffiliateHandler interface {
	CreateOrGet(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
	GetConversions(w http.ResponseWriter, r *http.Request)
	GetAnalytics(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
	TrackClick(w http.ResponseWriter, r *http.Request)
	RecordSignup(w http.ResponseWriter, r *http.Request)
}

type CreditsHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetLedger(w http.ResponseWriter, r *http.Request)
	GetPackages(w http.ResponseWriter, r *http.Request)
	Checkout(w http.ResponseWriter, r *http.Request)
	Webhook(w http.ResponseWriter, r *http.Request)
}

type ProjectsHandler interface {
	CreateProject(w http.ResponseWriter, r *http.Request)
	ListProjects(w http.ResponseWriter, r *http.Request)
	GetProject(w http.ResponseWriter, r *http.Request)
	GetStyleGuide(w http.ResponseWriter, r *http.Request)
	UpdateSketches(w http.ResponseWriter, r *http.Request)
	UpdateStyleGuide(w http.ResponseWriter, r *http.Request)
	RenameProject(w http.ResponseWriter, r *http.Request)
	MoveProject(w http.ResponseWriter, r *http.Request)
	DeleteProject(w http.ResponseWriter, r *http.Request)
	RestoreProject(w http.ResponseWriter, r *http.Request)
	PermanentlyDeleteProject(w http.ResponseWriter, r *http.Request)
	CreateFolder(w http.ResponseWriter, r *http.Request)
	ListFolders(w http.ResponseWriter, r *http.Request)
	UpdateFolder(w http.ResponseWriter, r *http.Request)
	DeleteFolder(w http.ResponseWriter, r *http.Request)
	RestoreFolder(w http.ResponseWriter, r *http.Request)
}

type TeamHandler interface {
	SearchUsers(w http.ResponseWriter, r *http.Request)
	Members(w http.ResponseWriter, r *http.Request)
	Invite(w http.ResponseWriter, r *http.Request)
	PendingInvites(w http.ResponseWriter, r *http.Request)
	AcceptInvite(w http.ResponseWriter, r *http.Request)
	DeclineInvite(w http.ResponseWriter, r *http.Request)
	RemoveMember(w http.ResponseWriter, r *http.Request)
}

type Middleware = func(http.Handler) http.Handler

// trackPath records its own click, so Referral only sets the cookie there.
const trackPath = "/api/affiliate/track"

type Handlers struct {
	AuthHandler      AuthHandler
	AffiliateHandler AffiliateHandler
	CreditsHandler   CreditsHandler
	ProjectsHandler  ProjectsHandler
	TeamHandler      TeamHandler

	jwt          auth.JWTServiceInterface
	tracker      affiliatehandlers.ClickTracker
	trackLimiter Middleware
}

// New builds the HTTP layer. trackLimiter guards the public click endpoint
// and may be nil.
func New(s *service.Services, tracker affiliatehandlers.ClickTracker, trackLimiter Middleware, webhookSecret string) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService, s.AffiliateService),
		AffiliateHandler: affiliatehandlers.New(s.AffiliateService),
		CreditsHandler:   creditshandlers.New(s.CreditService, s.AffiliateService, webhookSecret),
		ProjectsHandler:  projectshandlers.New(s.ProjectService),
		TeamHandler:      teamhandlers.New(s.TeamService),
		jwt:              s.JWT,
		tracker:          tracker,
		trackLimiter:     trackLimiter,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		affiliatehandlers.Referral(h.tracker, trackPath),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)
		r.Get("/billing/packages", h.CreditsHandler.GetPackages)
		r.Post("/billing/webhook", h.CreditsHandler.Webhook)
		r.Group(func(r chi.Router) {
			if h.trackLimiter != nil {
				r.Use(h.trackLimiter)
			}
			r.Post("/affiliate/track", h.AffiliateHandler.TrackClick)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwt))

			r.Get("/user/me", h.AuthHandler.Me)
			r.Patch("/user/name", h.AuthHandler.UpdateName)
			r.Get("/users/search", h.TeamHandler.SearchUsers)

			r.Post("/affiliate", h.AffiliateHandler.CreateOrGet)
			r.Get("/affiliate/stats", h.AffiliateHandler.GetStats)
			r.Get("/affiliate/conversions", h.AffiliateHandler.GetConversions)
			r.Post("/affiliate/conversions/signup", h.AffiliateHandler.RecordSignup)
			r.Get("/affiliate/analytics", h.AffiliateHandler.GetAnalytics)
			r.Patch("/affiliate/settings", h.AffiliateHandler.UpdateSettings)

			r.Get("/credits/balance", h.CreditsHandler.GetBalance)
			r.Get("/credits/ledger", h.CreditsHandler.GetLedger)
			r.Post("/billing/checkout", h.CreditsHandler.Checkout)

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", h.ProjectsHandler.ListProjects)
				r.Post("/", h.ProjectsHandler.CreateProject)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.ProjectsHandler.GetProject)
					r.Delete("/", h.ProjectsHandler.DeleteProject)
					r.Get("/style-guide", h.ProjectsHandler.GetStyleGuide)
					r.Put("/style-guide", h.ProjectsHandler.UpdateStyleGuide)
					r.Put("/sketches", h.ProjectsHandler.UpdateSketches)
					r.Patch("/name", h.ProjectsHandler.RenameProject)
					r.Patch("/folder", h.ProjectsHandler.MoveProject)
					r.Post("/restore", h.ProjectsHandler.RestoreProject)
					r.Delete("/permanent", h.ProjectsHandler.PermanentlyDeleteProject)
					r.Get("/members", h.TeamHandler.Members)
					r.Post("/members", h.TeamHandler.Invite)
				})
			})

			r.Route("/folders", func(r chi.Router) {
				r.Get("/", h.ProjectsHandler.ListFolders)
				r.Post("/", h.ProjectsHandler.CreateFolder)
				r.Patch("/{id}", h.ProjectsHandler.UpdateFolder)
				r.Delete("/{id}", h.ProjectsHandler.DeleteFolder)
				r.Post("/{id}/restore", h.ProjectsHandler.RestoreFolder)
			})

			r.Route("/team", func(r chi.Router) {
				r.Get("/invites", h.TeamHandler.PendingInvites)
				r.Post("/invites/{id}/accept", h.TeamHandler.AcceptInvite)
				r.Delete("/invites/{id}", h.TeamHandler.DeclineInvite)
				r.Delete("/members/{id}", h.TeamHandler.RemoveMember)
			})
		})
	})

	return r
}
