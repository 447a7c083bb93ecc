// Package app предоставляет маршруты приложения.
package app

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	announcementcreate "github.com/pmurala/scholarship-portal/internal/http/handlers/announcement/create"
	announcementlist "github.com/pmurala/scholarship-portal/internal/http/handlers/announcement/list"
	applicationlist "github.com/pmurala/scholarship-portal/internal/http/handlers/application/list"
	"github.com/pmurala/scholarship-portal/internal/http/handlers/application/submit"
	"github.com/pmurala/scholarship-portal/internal/http/handlers/application/updatestatus"
	"github.com/pmurala/scholarship-portal/internal/http/handlers/auth/login"
	"github.com/pmurala/scholarship-portal/internal/http/handlers/auth/register"
	"github.com/pmurala/scholarship-portal/internal/http/handlers/health"
	scholarshipcreate "github.com/pmurala/scholarship-portal/internal/http/handlers/scholarship/create"
	scholarshiplist "github.com/pmurala/scholarship-portal/internal/http/handlers/scholarship/list"
	scholarshipread "github.com/pmurala/scholarship-portal/internal/http/handlers/scholarship/read"
	scholarshipupdate "github.com/pmurala/scholarship-portal/internal/http/handlers/scholarship/update"
	"github.com/pmurala/scholarship-portal/internal/http/middlewarectx"
	"github.com/pmurala/scholarship-portal/internal/models"
	announcementservice "github.com/pmurala/scholarship-portal/internal/services/announcement"
	applicationservice "github.com/pmurala/scholarship-portal/internal/services/application"
	authservice "github.com/pmurala/scholarship-portal/internal/services/auth"
	scholarshipservice "github.com/pmurala/scholarship-portal/internal/services/scholarship"
)

// RegisterRoutes регистрирует все маршруты приложения.
//
// Проверка ролей выполняется только здесь, через RequireRole:
// обработчики не содержат собственных проверок прав.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	authService *authservice.AuthService,
	scholarshipService *scholarshipservice.ScholarshipService,
	applicationService *applicationservice.ApplicationService,
	announcementService *announcementservice.AnnouncementService,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	limiter := rate.NewLimiter(10, 30)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/signup", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Get("/scholarships", scholarshiplist.New(logger, scholarshipService).ServeHTTP)
		r.Get("/scholarships/{id}", scholarshipread.New(logger, scholarshipService).ServeHTTP)
		r.Get("/announcements", announcementlist.New(logger, announcementService).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(limiter, logger))

			// Операции абитуриента
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RequireRole(models.RoleApplicant, logger))
				r.Post("/applications", submit.New(logger, applicationService).ServeHTTP)
			})

			// Видимость заявок разграничивает сервис по роли из контекста
			r.Get("/applications", applicationlist.New(logger, applicationService).ServeHTTP)

			// Операции администратора
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RequireRole(models.RoleAdmin, logger))
				r.Post("/scholarships", scholarshipcreate.New(logger, scholarshipService).ServeHTTP)
				r.Put("/scholarships/{id}", scholarshipupdate.New(logger, scholarshipService).ServeHTTP)
				r.Patch("/applications/{id}/status", updatestatus.New(logger, applicationService).ServeHTTP)
				r.Post("/announcements", announcementcreate.New(logger, announcementService).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
