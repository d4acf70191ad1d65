package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wise-ads/internal/core/domain"
	"wise-ads/internal/core/port"
)

// TokenParser verifies a bearer token and returns the identity it
// asserts. The handler trusts the parsed identity without further
// checks.
type TokenParser interface {
	Parse(raw string) (domain.Identity, error)
}

// Handler is the inbound HTTP adapter. It decodes requests, hands them
// to the use cases and maps errors onto the response contract. Routes
// are registered on a chi.Router.
type Handler struct {
	campaigns  port.CampaignUseCase
	adGroups   port.AdGroupUseCase
	ads        port.AdUseCase
	keywords   port.KeywordUseCase
	auth       port.AuthUseCase
	admin      port.AdminUseCase
	onboarding port.OnboardingUseCase
	tokens     TokenParser
	logger     *slog.Logger
	router     chi.Router
}

// Deps bundles the handler's collaborators.
type Deps struct {
	Campaigns  port.CampaignUseCase
	AdGroups   port.AdGroupUseCase
	Ads        port.AdUseCase
	Keywords   port.KeywordUseCase
	Auth       port.AuthUseCase
	Admin      port.AdminUseCase
	Onboarding port.OnboardingUseCase
	Tokens     TokenParser
}

// NewHandler creates a handler with all routes configured. Auth routes
// are public; everything else sits behind the token middleware, and the
// admin subtree additionally behind the role guard.
func NewHandler(deps Deps, logger *slog.Logger) *Handler {
	h := &Handler{
		campaigns:  deps.Campaigns,
		adGroups:   deps.AdGroups,
		ads:        deps.Ads,
		keywords:   deps.Keywords,
		auth:       deps.Auth,
		admin:      deps.Admin,
		onboarding: deps.Onboarding,
		tokens:     deps.Tokens,
		logger:     logger,
	}

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.handleRegister)
			r.Post("/login", h.handleLogin)
			r.Post("/google", h.handleGoogleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)

			r.Route("/campaigns", func(r chi.Router) {
				r.Get("/", h.handleListCampaigns)
				r.Post("/", h.handleCreateCampaign)
				r.Patch("/{campaignID}/status", h.handleCampaignStatus)
				r.Get("/{campaignID}/adgroups", h.handleListAdGroups)
				r.Post("/{campaignID}/adgroups", h.handleCreateAdGroup)
			})

			r.Route("/adgroups/{adGroupID}", func(r chi.Router) {
				r.Post("/ads", h.handleCreateAd)
				r.Get("/keywords", h.handleListKeywords)
				r.Post("/keywords", h.handleCreateKeywords)
			})

			r.Post("/onboarding/generate", h.handleOnboardingGenerate)

			r.Route("/admin", func(r chi.Router) {
				r.Use(h.requireAdmin)
				r.Get("/users", h.handleAdminListUsers)
				r.Delete("/users/{userID}", h.handleAdminDeleteUser)
				r.Get("/campaigns", h.handleAdminListCampaigns)
				r.Get("/users/{userID}/campaigns", h.handleAdminUserCampaigns)
				r.Post("/users/{userID}/campaigns", h.handleAdminGrantCampaign)
				r.Delete("/users/{userID}/campaigns/{campaignID}", h.handleAdminRevokeCampaign)
			})
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
