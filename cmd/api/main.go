package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/reporting-service/internal/api/http"
	"github.com/spec-kit/reporting-service/internal/api/http/handlers"
	"github.com/spec-kit/reporting-service/internal/auth"
	"github.com/spec-kit/reporting-service/internal/config"
	"github.com/spec-kit/reporting-service/internal/events"
	"github.com/spec-kit/reporting-service/internal/observability"
	"github.com/spec-kit/reporting-service/internal/persistence"
	"github.com/spec-kit/reporting-service/internal/repository"
	"github.com/spec-kit/reporting-service/internal/service"
	"github.com/spec-kit/reporting-service/internal/worker"
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

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	reportRepo := repository.NewReportRepository(pool)
	monitoringRepo := repository.NewMonitoringRepository(pool)
	ratingRepo := repository.NewRatingRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	revocationList := auth.NewRevocationList(redis.Client)

	authService := service.NewAuthService(cfg.Auth, userRepo, revocationList, dispatcher)
	userService := service.NewUserService(userRepo)
	courseService := service.NewCourseService(courseRepo)
	reportService := service.NewReportService(reportRepo, dispatcher)
	monitoringService := service.NewMonitoringService(monitoringRepo, dispatcher)
	ratingService := service.NewRatingService(ratingRepo, dispatcher)
	statsService := service.NewStatsService(statsRepo, redis.Client, cfg.Redis.StatsCacheTTL(), logger)
	exportService := service.NewExportService(cfg.Export, reportRepo, courseRepo, monitoringRepo, ratingRepo, statsRepo)
	notificationService := service.NewNotificationService(dispatcher, logger)

	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), revocationList)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.App.Env == "production",
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Courses:        handlers.NewCoursesHandler(courseService),
		Reports:        handlers.NewReportsHandler(reportService),
		Monitoring:     handlers.NewMonitoringHandler(monitoringService),
		Ratings:        handlers.NewRatingsHandler(ratingService),
		Export:         handlers.NewExportHandler(exportService),
		Dashboard:      handlers.NewDashboardHandler(statsService, metrics),
		Users:          handlers.NewUsersHandler(userService),
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
