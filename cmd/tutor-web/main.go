package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/tutor-market/internal/handler"
	"github.com/noah-isme/tutor-market/internal/repository"
	"github.com/noah-isme/tutor-market/internal/service"
	"github.com/noah-isme/tutor-market/migrations"
	"github.com/noah-isme/tutor-market/pkg/cache"
	"github.com/noah-isme/tutor-market/pkg/config"
	"github.com/noah-isme/tutor-market/pkg/database"
	"github.com/noah-isme/tutor-market/pkg/logger"
	"github.com/noah-isme/tutor-market/pkg/render"
)

// @title Tutor Market
// @version 1.0.0
// @description Server rendered tutoring marketplace: teacher listings, trial lesson booking and tutor matching requests.
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logr); err != nil {
		logr.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logr *zap.Logger) error {
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db.DB, migrations.FS); err != nil {
			return err
		}
	}
	if version, err := database.Version(ctx, db.DB); err == nil {
		logr.Info("database ready", zap.Int64("schema_version", version))
	}

	catalog, err := service.LoadCatalog(ctx, repository.NewReferenceRepository(db))
	if err != nil {
		return err
	}

	redisClient, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	var cacheRepo service.CacheRepository
	if redisClient != nil {
		redisRepo := repository.NewCacheRepository(redisClient, "tutor-market", logr)
		defer redisRepo.Close() //nolint:errcheck
		cacheRepo = redisRepo
	} else {
		logr.Warn("redis disabled, confirmations are kept in process memory")
		cacheRepo = repository.NewMemoryCacheRepository()
	}

	pages, err := render.New()
	if err != nil {
		return err
	}

	metrics := service.NewMetricsService()
	validate := validator.New()
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Confirmation.TTL, logr)
	confirmations := service.NewConfirmationService(cacheSvc, cfg.Confirmation.Secret, cfg.Confirmation.TTL, logr)
	teachers := service.NewTeacherService(repository.NewTeacherRepository(db), catalog, cfg.Listing.HomeTeacherLimit, logr)
	bookings := service.NewBookingService(teachers, repository.NewBookingRepository(db), catalog, confirmations, validate, metrics, logr)
	requests := service.NewRequestService(repository.NewRequestRepository(db), confirmations, validate, metrics, logr)

	router := newRouter(cfg, logr, metrics, routeHandlers{
		catalog:  handler.NewCatalogHandler(teachers, pages),
		bookings: handler.NewBookingHandler(bookings, confirmations, pages),
		requests: handler.NewRequestHandler(requests, confirmations, pages),
		ops:      handler.NewMetricsHandler(metrics, db),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
