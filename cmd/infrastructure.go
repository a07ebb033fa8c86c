package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"shipment/internal/adapters/out/events"
	"shipment/internal/adapters/out/kafka"
	"shipment/internal/adapters/out/minio"
	"shipment/internal/adapters/out/postgres/migrations"
	"shipment/internal/adapters/out/rabbitmq"
	rediscache "shipment/internal/adapters/out/redis"
	"shipment/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Infrastructure owns the connections to everything outside the process.
type Infrastructure struct {
	DB        *gorm.DB
	Blobs     *minio.BlobStore
	Cache     *rediscache.OrderDetailsCache // nil when REDIS_ADDR is unset
	Publisher ports.StatusChangePublisher

	closers []func() error
}

// NewInfrastructure migrates the schema and connects the adapters. On error
// everything opened so far is closed again.
func NewInfrastructure(ctx context.Context, cfg Config, logger *slog.Logger) (_ *Infrastructure, err error) {
	infra := &Infrastructure{}
	defer func() {
		if err != nil {
			_ = infra.Close()
		}
	}()

	if err = migrations.Up(cfg.DSN()); err != nil {
		return nil, err
	}

	infra.DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	sqlDB, err := infra.DB.DB()
	if err != nil {
		return nil, err
	}
	infra.closers = append(infra.closers, sqlDB.Close)

	infra.Blobs, err = minio.NewBlobStore(minio.Config{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		Bucket:    cfg.MinioBucket,
		UseSSL:    cfg.UseMinioSSL(),
	})
	if err != nil {
		return nil, err
	}
	if err = infra.Blobs.EnsureBucket(ctx); err != nil {
		return nil, err
	}

	publishers := events.FanOut{}

	if cfg.RedisAddr != "" {
		if err = infra.connectCache(ctx, cfg); err != nil {
			return nil, err
		}
		publishers = append(publishers, infra.Cache)
	} else {
		logger.WarnContext(ctx, "REDIS_ADDR is not set, order details are read without a cache")
	}

	broker, err := cfg.Broker()
	if err != nil {
		return nil, err
	}
	switch broker {
	case EventsBrokerKafka:
		producer := kafka.NewStatusChangeProducer(cfg.KafkaBrokers(), cfg.KafkaOrderChangedTopic, logger)
		infra.closers = append(infra.closers, producer.Close)
		publishers = append(publishers, producer)
	case EventsBrokerRabbitMQ:
		var publisher *rabbitmq.StatusChangePublisher
		publisher, err = rabbitmq.NewStatusChangePublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange, logger)
		if err != nil {
			return nil, err
		}
		infra.closers = append(infra.closers, publisher.Close)
		publishers = append(publishers, publisher)
	case EventsBrokerNone:
		logger.WarnContext(ctx, "EVENTS_BROKER is none, status changes are not published")
	}
	infra.Publisher = publishers

	return infra, nil
}

func (i *Infrastructure) connectCache(ctx context.Context, cfg Config) error {
	db, err := cfg.RedisDatabase()
	if err != nil {
		return err
	}
	ttl, err := cfg.CacheTTL()
	if err != nil {
		return err
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       db,
	})
	i.closers = append(i.closers, client.Close)
	if err = client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("connect to redis %s: %w", cfg.RedisAddr, err)
	}

	i.Cache = rediscache.NewOrderDetailsCache(client, ttl)
	return nil
}

// Close releases connections in reverse order of opening.
func (i *Infrastructure) Close() error {
	var errs []error
	for j := len(i.closers) - 1; j >= 0; j-- {
		if err := i.closers[j](); err != nil {
			errs = append(errs, err)
		}
	}
	i.closers = nil
	return errors.Join(errs...)
}
