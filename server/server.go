// Package server assembles the consultation backend from configuration and runs it.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"legalgpt-portal/cache"
	"legalgpt-portal/config"
	"legalgpt-portal/handlers"
	"legalgpt-portal/knowledge"
	"legalgpt-portal/repository"
	"legalgpt-portal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// NewConsultationService wires the generator, cache and optional history store. The
// returned cleanup releases the Gemini client and database pool.
func NewConsultationService(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*service.ConsultationService, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	opts := []service.ConsultationServiceOption{
		service.WithLogger(logger),
		service.WithCache(cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval), cfg.Cache.TTL),
	}

	if cfg.Gemini.APIKey == "" {
		logger.Warn("gemini api key not set, consultations are disabled")
	} else {
		client, err := service.NewGeminiClient(ctx, cfg.Gemini.APIKey)
		if err != nil {
			return nil, cleanup, err
		}
		closers = append(closers, func() { _ = client.Close() })
		opts = append(opts, service.WithGenerator(service.NewGeminiGenerator(client, cfg.Gemini.Model)))
		logger.Info("gemini client initialized", zap.String("model", cfg.Gemini.Model))
	}

	if cfg.Database.URL != "" {
		pool, err := initPostgres(ctx, cfg.Database.URL)
		if err != nil {
			cleanup()
			return nil, func() {}, err
		}
		closers = append(closers, pool.Close)
		opts = append(opts, service.WithConsultationStore(repository.NewConsultationRepository(pool)))
		logger.Info("consultation history enabled")
	}

	return service.NewConsultationService(opts...), cleanup, nil
}

func initPostgres(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

// New builds the HTTP server for the API
func New(cfg *config.Config, kb *knowledge.KnowledgeBase, consultations handlers.Consulter, logger *zap.Logger) *http.Server {
	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handlers.NewRouter(handlers.RouterConfig{
		Knowledge:     kb,
		Consultations: consultations,
		APIKeyHash:    cfg.Server.APIKeyHash,
		Limiter:       handlers.NewClientLimiter(cfg.Server.RateLimit, cfg.Server.RateBurst),
		Logger:        logger,
	})
	return &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully
func Run(ctx context.Context, srv *http.Server, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
