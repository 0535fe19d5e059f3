package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "quotes", cfg.Tables.Quotes)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "percentage", cfg.Pricing.ServiceMode)
	assert.Equal(t, "strict", cfg.Quotes.EditPolicy)
	assert.Equal(t, devJWTSecret, cfg.Auth.JWTSecret)
	assert.Empty(t, cfg.Kafka.Brokers)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("RATE_LIMIT_WINDOW", "1m")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_SSL", "true")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "mock")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 2525, cfg.Mail.Port)
	assert.True(t, cfg.Mail.SSL)
	assert.True(t, cfg.Payments.Mock)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("production requires jwt secret", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("JWT_SECRET", "")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("bad integer", func(t *testing.T) {
		t.Setenv("SMTP_PORT", "twenty")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SMTP_PORT")
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("DRAFT_TTL", "forever")
		_, err := Load()
		require.Error(t, err)
	})
}
