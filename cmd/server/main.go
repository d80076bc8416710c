package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"interviewdeck/internal/clients"
	"interviewdeck/internal/config"
	"interviewdeck/internal/handlers"
	"interviewdeck/internal/insights"
	"interviewdeck/internal/jobs"
	"interviewdeck/internal/metrics"
	ownmiddleware "interviewdeck/internal/middleware"
	"interviewdeck/internal/playground"
	"interviewdeck/internal/routers"
	"interviewdeck/internal/search"
	"interviewdeck/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type app struct {
	router  *chi.Mux
	sweeper *jobs.SessionSweeperJob
}

func buildApp(cfg *config.Config, logger *zap.Logger) (*app, error) {
	starters, err := playground.LoadStarters()
	if err != nil {
		return nil, fmt.Errorf("failed to load language starters: %w", err)
	}
	cache, err := insights.NewCache(cfg.InsightsCacheSize)
	if err != nil {
		return nil, err
	}

	httpClient := clients.NewHTTPClient(cfg.UpstreamTimeout)
	searchClient := clients.NewSearchClient(httpClient, cfg.SearchServiceURL)
	executionClient := clients.NewExecutionClient(httpClient, cfg.ExecutionServiceURL)

	dispatcher := search.NewDispatcher(searchClient, logger, search.Options{
		GuardIncludesFilters: cfg.GuardIncludesFilters,
	})
	orchestrator := playground.NewOrchestrator(executionClient, starters, logger)
	store := session.NewStore(cfg.SessionTTL, orchestrator.NewWorkspace, logger)

	router := chi.NewRouter()

	// cors middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", ownmiddleware.SessionHeader},
		ExposedHeaders:   []string{ownmiddleware.SessionHeader, "Content-Disposition"},
		AllowCredentials: true,
	}))

	router.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer, middleware.Timeout(60*time.Second))
	router.Use(metrics.Middleware("interviewdeck"))

	routers.HealthRoutes(router, handlers.NewHealthHandler(starters, cache, cfg))
	routers.APIRoutes(router, store,
		handlers.NewDashboardHandler(dispatcher, cache, logger),
		handlers.NewPlaygroundHandler(orchestrator, cfg.DashboardPath, logger),
	)

	return &app{
		router:  router,
		sweeper: jobs.NewSessionSweeperJob(store, cfg.SessionSweepSchedule, logger),
	}, nil
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.String("search_service", cfg.SearchServiceURL),
		zap.String("execution_service", cfg.ExecutionServiceURL),
		zap.Bool("guard_includes_filters", cfg.GuardIncludesFilters))

	a, err := buildApp(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize service", zap.Error(err))
	}

	if err := a.sweeper.Start(); err != nil {
		logger.Fatal("Failed to start session sweeper", zap.Error(err))
	}

	serverAddr := ":" + cfg.Port

	// HTTP server with timeouts; runs can wait on the execution service
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      a.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Interviewdeck service starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("Interviewdeck service shutting down...")
	a.sweeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("Interviewdeck service exited")
}
