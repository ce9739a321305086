package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/letsshopbd/subtrack/internal/api/handlers"
	"github.com/letsshopbd/subtrack/internal/services"
	"github.com/letsshopbd/subtrack/internal/session"
	"github.com/letsshopbd/subtrack/internal/web"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	sessions *session.Manager,
	entryService services.EntryServiceProvider,
	userService services.UserServiceProvider,
	corsOrigin string,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	entryHandler := handlers.NewEntryHandler(entryService)
	authHandler := handlers.NewAuthHandler(userService, sessions)
	pages := web.NewHandler()

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)

		r.Route("/entries", func(r chi.Router) {
			r.Use(sessions.Require)
			r.Get("/", entryHandler.List)
			r.Post("/", entryHandler.Create)
			r.Patch("/", entryHandler.Update)
			r.Delete("/", entryHandler.Delete)
		})
	})

	// HTML pages, behind the redirect guard
	r.Group(func(r chi.Router) {
		r.Use(sessions.PageGuard)
		r.Get("/", pages.Index)
		r.Get("/login", pages.Login)
		r.Get("/dashboard", pages.Dashboard)
		r.Get("/add", pages.Add)
	})

	return r
}
