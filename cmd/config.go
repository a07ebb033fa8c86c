package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

const (
	EventsBrokerKafka    = "kafka"
	EventsBrokerRabbitMQ = "rabbitmq"
	EventsBrokerNone     = "none"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    string

	EventsBroker           string
	KafkaHost              string
	KafkaOrderChangedTopic string
	RabbitMQURL            string
	RabbitMQExchange       string

	RedisAddr     string
	RedisPassword string
	RedisDB       string
	OrderCacheTTL string

	AuditRetentionDays string
	LogLevel           string
}

// DSN is the libpq connection string used by both gorm and the migrator.
func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, orDefault(c.DBSslMode, "disable"))
}

func (c Config) UseMinioSSL() bool {
	ok, _ := strconv.ParseBool(c.MinioUseSSL)
	return ok
}

// Broker returns the events broker, kafka when unset.
func (c Config) Broker() (string, error) {
	switch b := strings.ToLower(orDefault(c.EventsBroker, EventsBrokerKafka)); b {
	case EventsBrokerKafka, EventsBrokerRabbitMQ, EventsBrokerNone:
		return b, nil
	default:
		return "", fmt.Errorf("EVENTS_BROKER must be one of kafka, rabbitmq, none; got %q", c.EventsBroker)
	}
}

func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func (c Config) RedisDatabase() (int, error) {
	if c.RedisDB == "" {
		return 0, nil
	}
	db, err := strconv.Atoi(c.RedisDB)
	if err != nil {
		return 0, fmt.Errorf("REDIS_DB: %w", err)
	}
	return db, nil
}

// CacheTTL parses ORDER_CACHE_TTL as a Go duration ("10m"). Zero means the
// cache default.
func (c Config) CacheTTL() (time.Duration, error) {
	if c.OrderCacheTTL == "" {
		return 0, nil
	}
	ttl, err := time.ParseDuration(c.OrderCacheTTL)
	if err != nil {
		return 0, fmt.Errorf("ORDER_CACHE_TTL: %w", err)
	}
	return ttl, nil
}

// AuditRetention defaults to 90 days.
func (c Config) AuditRetention() (time.Duration, error) {
	days := 90
	if c.AuditRetentionDays != "" {
		var err error
		if days, err = strconv.Atoi(c.AuditRetentionDays); err != nil {
			return 0, fmt.Errorf("AUDIT_RETENTION_DAYS: %w", err)
		}
	}
	return time.Duration(days) * 24 * time.Hour, nil
}

func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
