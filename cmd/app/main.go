package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shipment/cmd"
	httpin "shipment/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

//	@title						Shipment API
//	@version					1.0
//	@description				Order lifecycle and refund handling for farm produce deliveries.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, configs, logger); err != nil {
		log.Fatalf("shipment service stopped: %v", err)
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	return cmd.Config{
		HTTPPort:               os.Getenv("HTTP_PORT"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 os.Getenv("DB_PORT"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              os.Getenv("DB_SSLMODE"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		MinioEndpoint:          os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey:         os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey:         os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:            os.Getenv("MINIO_BUCKET"),
		MinioUseSSL:            os.Getenv("MINIO_USE_SSL"),
		EventsBroker:           os.Getenv("EVENTS_BROKER"),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: os.Getenv("KAFKA_ORDER_CHANGED_TOPIC"),
		RabbitMQURL:            os.Getenv("RABBITMQ_URL"),
		RabbitMQExchange:       os.Getenv("RABBITMQ_EXCHANGE"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:                os.Getenv("REDIS_DB"),
		OrderCacheTTL:          os.Getenv("ORDER_CACHE_TTL"),
		AuditRetentionDays:     os.Getenv("AUDIT_RETENTION_DAYS"),
		LogLevel:               os.Getenv("LOG_LEVEL"),
	}
}

func run(ctx context.Context, configs cmd.Config, logger *slog.Logger) error {
	if configs.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}

	infra, err := cmd.NewInfrastructure(ctx, configs, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := infra.Close(); err != nil {
			logger.Error("Failed to close connections", "error", err)
		}
	}()

	app := cmd.NewCompositionRoot(configs, infra, logger)

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return err
	}
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	actions := app.CreateActions()
	e, err := httpin.NewEcho(ctx, app.CreateServer(actions), httpin.RouterConfig{
		JWTSecret: []byte(configs.JWTSecret),
		Failures:  actions,
	})
	if err != nil {
		return err
	}

	// The audit writer outlives the HTTP server so in-flight requests can
	// still record their calls.
	auditCtx, stopAudit := context.WithCancel(context.WithoutCancel(ctx))
	g, gctx := errgroup.WithContext(ctx)

	auditDone := make(chan error, 1)
	go func() { auditDone <- app.AuditLog().Run(auditCtx) }()

	g.Go(func() error {
		logger.InfoContext(gctx, "HTTP server started", "port", configs.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.InfoContext(shutdownCtx, "Shutting down HTTP server")
		return e.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	stopAudit()
	if auditErr := <-auditDone; auditErr != nil && !errors.Is(auditErr, context.Canceled) {
		logger.Error("Audit writer stopped with error", "error", auditErr)
	}
	return err
}
