package cmd_test

import (
	"log/slog"
	"testing"
	"time"

	"shipment/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DSN(t *testing.T) {
	cfg := cmd.Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "shipment"}

	assert.Equal(t, "postgres://u:p@db:5432/shipment?sslmode=disable", cfg.DSN())
}

func TestConfig_Broker(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"should default to kafka", "", cmd.EventsBrokerKafka, false},
		{"should ignore case", "RabbitMQ", cmd.EventsBrokerRabbitMQ, false},
		{"should accept none", "none", cmd.EventsBrokerNone, false},
		{"should reject unknown brokers", "nats", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cmd.Config{EventsBroker: tt.value}.Broker()

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_KafkaBrokers(t *testing.T) {
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cmd.Config{KafkaHost: " k1:9092, ,k2:9092"}.KafkaBrokers())
	assert.Empty(t, cmd.Config{}.KafkaBrokers())
}

func TestConfig_Durations(t *testing.T) {
	t.Run("should default the audit retention to 90 days", func(t *testing.T) {
		d, err := cmd.Config{}.AuditRetention()

		require.NoError(t, err)
		assert.Equal(t, 90*24*time.Hour, d)
	})

	t.Run("should parse the retention in days", func(t *testing.T) {
		d, err := cmd.Config{AuditRetentionDays: "7"}.AuditRetention()

		require.NoError(t, err)
		assert.Equal(t, 7*24*time.Hour, d)
	})

	t.Run("should reject a bad cache ttl", func(t *testing.T) {
		_, err := cmd.Config{OrderCacheTTL: "ten minutes"}.CacheTTL()

		require.Error(t, err)
	})

	t.Run("should parse the cache ttl", func(t *testing.T) {
		d, err := cmd.Config{OrderCacheTTL: "90s"}.CacheTTL()

		require.NoError(t, err)
		assert.Equal(t, 90*time.Second, d)
	})
}

func TestConfig_SlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, cmd.Config{LogLevel: "debug"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, cmd.Config{LogLevel: "loud"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, cmd.Config{}.SlogLevel())
}

func TestConfig_RedisDatabase(t *testing.T) {
	db, err := cmd.Config{RedisDB: "2"}.RedisDatabase()
	require.NoError(t, err)
	assert.Equal(t, 2, db)

	_, err = cmd.Config{RedisDB: "x"}.RedisDatabase()
	require.Error(t, err)
}
