package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/fit-training-service/internal/api/http"
	"github.com/spec-kit/fit-training-service/internal/api/http/handlers"
	"github.com/spec-kit/fit-training-service/internal/auth"
	"github.com/spec-kit/fit-training-service/internal/config"
	"github.com/spec-kit/fit-training-service/internal/events"
	"github.com/spec-kit/fit-training-service/internal/observability"
	"github.com/spec-kit/fit-training-service/internal/persistence"
	"github.com/spec-kit/fit-training-service/internal/repository"
	"github.com/spec-kit/fit-training-service/internal/service"
	"github.com/spec-kit/fit-training-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		snapshots repository.Snapshotter
		pg        *persistence.Postgres
		redis     *persistence.Redis
	)
	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		pg, err = persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Fatal("failed to connect postgres", zap.Error(err))
		}
		defer pg.Close()

		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		snapshots = persistence.NewPostgresSnapshots(pg.PoolHandle(), cfg.Store.CollectionKey)
	case config.StoreBackendRedis:
		redis = persistence.NewRedis(cfg.Redis, logger)
		defer redis.Close()
		snapshots = persistence.NewRedisSnapshots(redis, cfg.Store.CollectionKey)
	default:
		snapshots = persistence.NewFileSnapshots(cfg.Store.FilePath)
	}

	store, err := repository.NewTraineeStore(ctx, snapshots)
	if err != nil {
		logger.Fatal("failed to load trainee store", zap.Error(err))
	}
	if cfg.Training.SeedDemo {
		if err := repository.SeedDemo(ctx, store); err != nil {
			logger.Fatal("failed to seed demo trainees", zap.Error(err))
		}
	}

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.App)
	worker.StartNotificationWorker(notificationService)

	sessionService := service.NewSessionService(cfg.Auth, store, logger)
	registrationService := service.NewRegistrationService(store, dispatcher, cfg.Auth.BcryptCost, logger)
	trainingService := service.NewTrainingService(store, dispatcher, logger)
	adminService := service.NewAdminService(store, dispatcher, cfg.Export, logger)

	authMiddleware := auth.NewAuthMiddleware(sessionService.TokenManager(), store)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Session:        handlers.NewSessionHandler(sessionService),
		Registration:   handlers.NewRegistrationHandler(registrationService),
		Training:       handlers.NewTrainingHandler(trainingService),
		Admin:          handlers.NewAdminHandler(adminService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
