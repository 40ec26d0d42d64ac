package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/swiftcab/swiftcab/internal/pkg/config"
	"github.com/swiftcab/swiftcab/internal/pkg/database"
	"github.com/swiftcab/swiftcab/internal/pkg/health"
	"github.com/swiftcab/swiftcab/internal/pkg/logger"
	"github.com/swiftcab/swiftcab/internal/pkg/middleware"
	natspkg "github.com/swiftcab/swiftcab/internal/pkg/nats"
	"github.com/swiftcab/swiftcab/internal/pkg/retry"
	"github.com/swiftcab/swiftcab/services/rides/gateway"
	"github.com/swiftcab/swiftcab/services/rides/handler"
	"github.com/swiftcab/swiftcab/services/rides/repository"
	"github.com/swiftcab/swiftcab/services/rides/usecase"
)

func main() {
	appName := "rides-service"
	configs := config.InitConfig(config.GetEnv("CONFIG_PATH", "config/rides.env"))

	zapLogger, err := logger.InitLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	retrier := retry.New(retry.DefaultConfig())

	// Initialize PostgreSQL database connection
	var postgresClient *database.PostgresClient
	err = retrier.Execute(ctx, func(ctx context.Context) error {
		postgresClient, err = database.NewPostgresClient(configs.Database)
		return err
	})
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize NATS and provision the stream topology
	var natsClient *natspkg.Client
	err = retrier.Execute(ctx, func(ctx context.Context) error {
		natsClient, err = natspkg.NewClient(configs.NATS.URL)
		return err
	})
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	if err := natspkg.EnsureStreams(ctx, natsClient); err != nil {
		logger.Fatal("Failed to provision JetStream streams", logger.Err(err))
	}

	// Wire repository -> gateway -> usecase -> handlers
	rideRepo := repository.NewRideRepository(configs, postgresClient.GetDB())
	rideGW := gateway.NewRideGW(natsClient)
	rideUC := usecase.NewRideUC(configs, rideRepo, rideGW)

	h := handler.NewHandler(rideUC, natsClient, configs)
	if err := h.InitNATSConsumers(); err != nil {
		logger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}
	defer h.Stop()

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	h.RegisterRoutes(e)

	logger.Info("Starting server",
		logger.String("app", appName),
		logger.Int("port", configs.Server.Port))

	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		logger.Fatal("Failed to start server",
			logger.String("app", appName),
			logger.Err(err))
	}
}
