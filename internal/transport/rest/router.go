package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/config"
	"github.com/heartmarshall/crm-backend/internal/transport/dataloader"
	"github.com/heartmarshall/crm-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// RouterDeps holds everything NewRouter wires together.
type RouterDeps struct {
	Accounts    *AccountHandler
	Health      *HealthHandler
	Loaders     *dataloader.Repos
	Tokens      tokenValidator
	RateLimiter *middleware.RateLimiter
	Config      *config.Config
	Logger      *slog.Logger
}

// NewRouter builds the HTTP handler: health probes at the root and the
// account API under /api/v1.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.When(d.Config.CORS.AllowedOrigins != "", middleware.CORS(d.Config.CORS)),
	))

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)

	limit := d.RateLimiter.Limit(d.Config.Server.AutoCompleteRateLimit)
	h := d.Accounts

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(
			middleware.Auth(d.Tokens),
			middleware.Session(d.Config.Session),
			dataloader.Middleware(d.Loaders),
		)

		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", h.Index)
			r.Post("/", h.Create)
			r.Get("/new", h.New)
			r.Get("/options", h.Options)
			r.Post("/redraw", h.Redraw)
			r.Get("/search", h.Search)
			r.Post("/filter", h.Filter)
			r.With(limit).Get("/auto_complete", h.AutoComplete)
			r.Get("/recent", h.Recent)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Show)
				r.Put("/", h.Update)
				r.Delete("/", h.Delete)
				r.Get("/edit", h.Edit)
				r.Put("/add_tag", h.AddTag)
				r.Put("/delete_tag", h.DeleteTag)
			})
		})

		r.With(limit).Get("/tags/auto_complete", h.AutoCompleteTags)
	})

	return r
}
