package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/spec-kit/lead-dashboard/internal/api/http"
	"github.com/spec-kit/lead-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/lead-dashboard/internal/auth"
	"github.com/spec-kit/lead-dashboard/internal/config"
	"github.com/spec-kit/lead-dashboard/internal/countries"
	"github.com/spec-kit/lead-dashboard/internal/events"
	"github.com/spec-kit/lead-dashboard/internal/observability"
	"github.com/spec-kit/lead-dashboard/internal/persistence"
	"github.com/spec-kit/lead-dashboard/internal/repository"
	"github.com/spec-kit/lead-dashboard/internal/service"
	"github.com/spec-kit/lead-dashboard/internal/worker"
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

	metrics := observability.NewMetrics("lead_dashboard")

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(logger, metrics, cfg.Notification)
	notifier := worker.StartNotificationWorker(ctx, dispatcher, notificationService, logger)

	leadRepo := repository.NewMemoryLeadRepository(repository.SeedLeads(), repository.MemoryLeadOptions{
		ListLatency:   cfg.Store.ListLatency(),
		UpdateLatency: cfg.Store.UpdateLatency(),
	})
	assessmentRepo := repository.NewMemoryAssessmentRepository()

	leadService := service.NewLeadService(service.LeadDependencies{
		LeadRepo:   leadRepo,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	directory := countries.NewDirectory(countries.DirectoryOptions{})
	assessmentService := service.NewAssessmentService(service.AssessmentDependencies{
		AssessmentRepo: assessmentRepo,
		Directory:      directory,
		Dispatcher:     dispatcher,
		Logger:         logger,
	})
	authService, err := service.NewAuthService(*cfg, redis)
	if err != nil {
		logger.Fatal("failed to init auth", zap.Error(err))
	}
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), redis)

	app := httptransport.NewApp(cfg.App.Name)
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{"redis": redis}),
		Auth:           handlers.NewAuthHandler(authService),
		Leads:          handlers.NewLeadsHandler(leadService),
		Assessments:    handlers.NewAssessmentsHandler(assessmentService),
		Countries:      handlers.NewCountriesHandler(directory),
		AuthMiddleware: authMiddleware,
		Metrics:        metrics,
		RequireLogin:   cfg.Auth.RequireLogin,
	})

	logger.Info("starting",
		zap.String("addr", cfg.App.Addr()),
		zap.String("env", cfg.App.Env),
		zap.Bool("require_login", cfg.Auth.RequireLogin),
		zap.Duration("list_latency", cfg.Store.ListLatency()),
	)

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
	cancel()
	notifier.Wait()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
