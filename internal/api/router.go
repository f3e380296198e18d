package api

import (
	"net/http"
	"time"

	"github.com/dom/dev-network/internal/api/handlers"
	"github.com/dom/dev-network/internal/api/middleware"
	"github.com/dom/dev-network/internal/config"
	"github.com/dom/dev-network/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	metrics := middleware.NewMetrics()
	rateLimiter := middleware.NewRateLimiter(cfg.MutationRatePerMin, cfg.MutationBurst)

	// Global middleware
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Timeout(10 * time.Second))
	r.Use(middleware.CORS)
	r.Use(metrics.Middleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	profileHandler := handlers.NewProfileHandler(services.Profile, services.Account, services.Github)
	postHandler := handlers.NewPostHandler(services.Post)

	authGate := middleware.Auth(services.Auth)
	throttled := rateLimiter.Middleware()

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Registration and login are public
		r.Post("/users", authHandler.Register)
		r.Post("/auth", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authGate)
			r.Get("/auth", authHandler.Me)
		})

		r.Route("/profile", func(r chi.Router) {
			// Public profile reads
			r.Get("/", profileHandler.GetAll)
			r.Get("/user/{user_id}", profileHandler.GetByUserID)
			r.Get("/github/{username}", profileHandler.GithubRepos)

			r.Group(func(r chi.Router) {
				r.Use(authGate)
				r.Get("/me", profileHandler.GetMine)

				r.Group(func(r chi.Router) {
					r.Use(throttled)
					r.Post("/", profileHandler.Set)
					r.Delete("/", profileHandler.DeleteAccount)
					r.Put("/experience", profileHandler.AddExperience)
					r.Delete("/experience/{exp_id}", profileHandler.RemoveExperience)
					r.Put("/education", profileHandler.AddEducation)
					r.Delete("/education/{edu_id}", profileHandler.RemoveEducation)
				})
			})
		})

		r.Route("/posts", func(r chi.Router) {
			r.Use(authGate)
			r.Get("/", postHandler.GetAll)
			r.Get("/{id}", postHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(throttled)
				r.Post("/", postHandler.Create)
				r.Delete("/{id}", postHandler.Delete)
				r.Put("/{id}/like", postHandler.ToggleLike)
				r.Post("/{id}/comments", postHandler.AddComment)
				r.Delete("/{post_id}/comments/{comment_id}", postHandler.RemoveComment)
			})
		})
	})

	return r
}
