package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gatewise/payment-router/internal/application/usecase"
	"github.com/gatewise/payment-router/internal/domain/port"
	"github.com/gatewise/payment-router/internal/domain/service"
	"github.com/gatewise/payment-router/internal/infrastructure/adapters"
	"github.com/gatewise/payment-router/internal/infrastructure/config"
	"github.com/gatewise/payment-router/internal/infrastructure/messaging"
	infraPG "github.com/gatewise/payment-router/internal/infrastructure/postgres"
	grpcPresentation "github.com/gatewise/payment-router/internal/presentation/grpc"
	"github.com/gatewise/payment-router/internal/presentation/rest"
	"github.com/gatewise/payment-router/pkg/auth"
	kafkapkg "github.com/gatewise/payment-router/pkg/kafka"
	"github.com/gatewise/payment-router/pkg/observability"
	pgpkg "github.com/gatewise/payment-router/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize logger.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slog.SetDefault(logger)

	logger.Info("starting payment-router",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"default_strategy", cfg.DefaultStrategy,
	)

	metrics := observability.NewMetrics()

	// Initialize database. The routing core works without it; only the audit
	// trail is lost.
	var decisionRepo port.DecisionRepository
	pool, err := pgpkg.NewPool(ctx, pgpkg.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
		MaxConns: cfg.DB.MaxConns,
		MinConns: cfg.DB.MinConns,
	})
	if err != nil {
		logger.Warn("database unavailable, routing decisions will not be persisted", "error", err)
		pool = nil
	} else {
		defer pool.Close()

		dsn := pgpkg.Config{
			Host:     cfg.DB.Host,
			Port:     cfg.DB.Port,
			User:     cfg.DB.User,
			Password: cfg.DB.Password,
			Database: cfg.DB.Name,
			SSLMode:  cfg.DB.SSLMode,
		}.DSN()
		if err := pgpkg.RunMigrations(dsn, "internal/infrastructure/postgres/migrations"); err != nil {
			logger.Warn("migration warning", "error", err)
		}
		decisionRepo = infraPG.NewDecisionRepo(pool)
	}

	// Initialize Kafka producer. Writers are lazy; a dead broker surfaces as
	// publish warnings, not a startup failure.
	producer := kafkapkg.NewProducer(kafkapkg.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer producer.Close()
	publisher := messaging.NewPublisher(producer, logger)

	// JWT service for the gRPC auth interceptor.
	jwtService, err := auth.NewJWTService(auth.JWTConfig{
		Secret: cfg.JWTSecret,
	})
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// Wire dependencies (DI via constructors).
	registry := adapters.BuildRegistry(cfg.Processors, logger)
	router, err := service.NewPaymentRouter(registry, cfg.DefaultStrategy, logger)
	if err != nil {
		logger.Error("invalid default strategy", "strategy", cfg.DefaultStrategy, "error", err)
		os.Exit(1)
	}

	// Use cases.
	routeTransactionUC := usecase.NewRouteTransaction(router, publisher, decisionRepo, logger)
	executePaymentUC := usecase.NewExecutePayment(router, publisher, decisionRepo, logger)
	listProcessorsUC := usecase.NewListProcessors(registry)
	removeProcessorUC := usecase.NewRemoveProcessor(registry, logger)

	// gRPC server.
	handler := grpcPresentation.NewRouterHandler(
		routeTransactionUC,
		executePaymentUC,
		listProcessorsUC,
		removeProcessorUC,
		metrics,
		logger,
	)
	grpcServer := grpcPresentation.NewServer(handler, logger, cfg.GRPCPort, jwtService)

	// HTTP server (health checks + metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(pool, logger)
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metrics.Handler())

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: mux,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		errCh <- grpcServer.Start()
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for shutdown.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	if err := httpServer.Shutdown(context.Background()); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	grpcServer.Stop()
	logger.Info("payment-router stopped")
}
