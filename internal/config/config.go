package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const devJWTSecret = "dev-secret-change-me"

type Config struct {
	Port         string
	Environment  string
	LogLevel     string
	AWS          AWSConfig
	Tables       TablesConfig
	Redis        RedisConfig
	Auth         AuthConfig
	Mail         MailConfig
	Kafka        KafkaConfig
	RateLimit    RateLimitConfig
	Pricing      PricingConfig
	Quotes       QuotesConfig
	Payments     PaymentsConfig
	Connectivity ConnectivityConfig
	CORS         CORSConfig
}

type AWSConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

type TablesConfig struct {
	Quotes   string
	Payments string
}

// RedisConfig holds the draft and rate-limit store. An empty Addr selects the
// in-process stores.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	DraftTTL time.Duration
}

type AuthConfig struct {
	JWTSecret string
	Issuer    string
	Audience  string
}

type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	NotifyTo string
	SSL      bool
}

// KafkaConfig enables quote event publishing when Brokers is non-empty.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

type PricingConfig struct {
	ServiceMode string
}

type QuotesConfig struct {
	EditPolicy string
}

type PaymentsConfig struct {
	AccessToken     string
	Mock            bool
	TestPayerEmail  string
	TestPayerUserID string
}

type ConnectivityConfig struct {
	ProbeInterval time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// Load reads configuration from the environment and an optional .env file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("env")
	v.SetConfigName(".env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	v.AddConfigPath("../..")

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	l := loader{v: v}
	cfg := &Config{
		Port:        l.str("PORT", "8080"),
		Environment: l.str("ENVIRONMENT", "development"),
		LogLevel:    l.str("LOG_LEVEL", "info"),
		AWS: AWSConfig{
			Region:          l.str("AWS_REGION", "us-east-1"),
			Endpoint:        l.str("DYNAMODB_ENDPOINT", ""),
			AccessKeyID:     l.str("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: l.str("AWS_SECRET_ACCESS_KEY", "local"),
		},
		Tables: TablesConfig{
			Quotes:   l.str("QUOTES_TABLE", "quotes"),
			Payments: l.str("PAYMENTS_TABLE", "quote_payments"),
		},
		Redis: RedisConfig{
			Addr:     l.str("REDIS_ADDR", ""),
			Password: l.str("REDIS_PASSWORD", ""),
			DB:       l.integer("REDIS_DB", 0),
			DraftTTL: l.duration("DRAFT_TTL", 24*time.Hour),
		},
		Auth: AuthConfig{
			JWTSecret: l.str("JWT_SECRET", ""),
			Issuer:    l.str("JWT_ISSUER", "coatingshop"),
			Audience:  l.str("JWT_AUDIENCE", "coatingshop-api"),
		},
		Mail: MailConfig{
			Host:     l.str("SMTP_HOST", "localhost"),
			Port:     l.integer("SMTP_PORT", 1025),
			User:     l.str("SMTP_USER", ""),
			Password: l.str("SMTP_PASSWORD", ""),
			From:     l.str("SMTP_FROM", "no-reply@coatingshop.local"),
			NotifyTo: l.str("CONTACT_NOTIFY_TO", "quotes@coatingshop.local"),
			SSL:      l.boolean("SMTP_SSL", false),
		},
		Kafka: KafkaConfig{
			Brokers: splitAndTrim(l.str("KAFKA_BROKERS", "")),
			Topic:   l.str("KAFKA_TOPIC_QUOTES", "quote-events"),
		},
		RateLimit: RateLimitConfig{
			Requests: l.integer("RATE_LIMIT_REQUESTS", 100),
			Window:   l.duration("RATE_LIMIT_WINDOW", 15*time.Minute),
		},
		Pricing: PricingConfig{
			ServiceMode: l.str("PRICING_SERVICE_MODE", "percentage"),
		},
		Quotes: QuotesConfig{
			EditPolicy: l.str("QUOTE_EDIT_POLICY", "strict"),
		},
		Payments: PaymentsConfig{
			AccessToken:     l.str("MERCADOPAGO_ACCESS_TOKEN", ""),
			Mock:            l.boolean("PAYMENT_GATEWAY_MOCK", false),
			TestPayerEmail:  l.str("MERCADOPAGO_TEST_PAYER_EMAIL", ""),
			TestPayerUserID: l.str("MERCADOPAGO_TEST_PAYER_USER_ID", ""),
		},
		Connectivity: ConnectivityConfig{
			ProbeInterval: l.duration("CONNECTIVITY_PROBE_INTERVAL", 15*time.Second),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitAndTrim(l.str("CORS_ALLOWED_ORIGINS", "*")),
		},
	}
	if l.err != nil {
		return nil, l.err
	}

	if cfg.Auth.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("JWT_SECRET is required")
		}
		cfg.Auth.JWTSecret = devJWTSecret
	}
	if cfg.RateLimit.Requests <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_REQUESTS must be positive")
	}

	return cfg, nil
}

// loader keeps the first conversion error so Load can report it once.
type loader struct {
	v   *viper.Viper
	err error
}

func (l *loader) str(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if l.v.IsSet(key) {
		return l.v.GetString(key)
	}
	return defaultValue
}

func (l *loader) integer(key string, defaultValue int) int {
	raw := l.str(key, "")
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		l.fail(key, raw)
		return defaultValue
	}
	return n
}

func (l *loader) boolean(key string, defaultValue bool) bool {
	raw := strings.ToLower(strings.TrimSpace(l.str(key, "")))
	switch raw {
	case "":
		return defaultValue
	case "1", "true", "yes", "on", "mock":
		return true
	case "0", "false", "no", "off":
		return false
	}
	l.fail(key, raw)
	return defaultValue
}

func (l *loader) duration(key string, defaultValue time.Duration) time.Duration {
	raw := strings.TrimSpace(l.str(key, ""))
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		l.fail(key, raw)
		return defaultValue
	}
	return d
}

func (l *loader) fail(key, raw string) {
	if l.err == nil {
		l.err = fmt.Errorf("invalid value %q for %s", raw, key)
	}
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		pt := strings.TrimSpace(p)
		if pt != "" {
			parts = append(parts, pt)
		}
	}
	return parts
}
