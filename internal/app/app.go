// Package app собирает приложение портала стипендий: хранилище, миграции,
// сервисы, маршруты и HTTP-сервер с graceful shutdown.
package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/pmurala/scholarship-portal/internal/config"
	"github.com/pmurala/scholarship-portal/internal/lib/jwt"
	"github.com/pmurala/scholarship-portal/internal/migrations"
	announcementservice "github.com/pmurala/scholarship-portal/internal/services/announcement"
	applicationservice "github.com/pmurala/scholarship-portal/internal/services/application"
	authservice "github.com/pmurala/scholarship-portal/internal/services/auth"
	scholarshipservice "github.com/pmurala/scholarship-portal/internal/services/scholarship"
	"github.com/pmurala/scholarship-portal/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := authservice.NewAuthService(db, jwtMaker)
	scholarshipService := scholarshipservice.NewScholarshipService(db, logger)
	applicationService := applicationservice.NewApplicationService(db, db, logger)
	announcementService := announcementservice.NewAnnouncementService(db, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, authService, scholarshipService, applicationService, announcementService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		return err
	}
}
