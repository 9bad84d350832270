// Package goaltracker собирает приложение: хранилище, миграции, кеш,
// сервисы, маршруты и HTTP-сервер.
package goaltracker

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/magabrotheeeer/goal-tracker/internal/cache"
	"github.com/magabrotheeeer/goal-tracker/internal/config"
	"github.com/magabrotheeeer/goal-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/goal-tracker/internal/migrations"
	authservice "github.com/magabrotheeeer/goal-tracker/internal/services/auth"
	goalservice "github.com/magabrotheeeer/goal-tracker/internal/services/goal"
	"github.com/magabrotheeeer/goal-tracker/internal/storage/repository"

	"github.com/go-chi/chi"
)

// App инкапсулирует HTTP-сервер и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New инициализирует все зависимости приложения и возвращает готовый App.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := authservice.New(db, jwtMaker)
	goalService := goalservice.New(db, cacheRedis, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, goalService)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
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
