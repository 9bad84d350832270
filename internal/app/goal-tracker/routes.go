// Package goaltracker предоставляет маршруты для основного приложения.
package goaltracker

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/goal-tracker/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/goal-tracker/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/goal-tracker/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/goal-tracker/internal/http/handlers/goal/create"
	"github.com/magabrotheeeer/goal-tracker/internal/http/handlers/goal/health"
	"github.com/magabrotheeeer/goal-tracker/internal/http/handlers/goal/list"
	"github.com/magabrotheeeer/goal-tracker/internal/http/handlers/goal/remove"
	"github.com/magabrotheeeer/goal-tracker/internal/http/handlers/goal/summary"
	"github.com/magabrotheeeer/goal-tracker/internal/http/handlers/goal/update"
	"github.com/magabrotheeeer/goal-tracker/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/goal-tracker/internal/services/auth"
	goalservice "github.com/magabrotheeeer/goal-tracker/internal/services/goal"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.Service, goalService *goalservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	// Открытые конечные точки
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Post("/logout", logout.New(logger).ServeHTTP)
	})

	// Группа с JWT аутентификацией
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(authService, logger))
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Post("/goals", create.New(logger, goalService).ServeHTTP)
		r.Get("/goals", list.New(logger, goalService).ServeHTTP)
		r.Get("/goals/summary", summary.New(logger, goalService).ServeHTTP)
		r.Put("/goals/{id}", update.New(logger, goalService).ServeHTTP)
		r.Delete("/goals/{id}", remove.New(logger, goalService).ServeHTTP)
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
