package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"dev"`
	ProdOrigins string `env:"PROD_ORIGINS"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	DBDSN string `env:"DB_DSN,required,notEmpty"`

	JWTSecret         string        `env:"JWT_SECRET,required,notEmpty"`
	JWTAccessTokenTTL time.Duration `env:"JWT_ACCESS_TOKEN_TTL" envDefault:"15m"`
	BcryptCost        int           `env:"BCRYPT_COST" envDefault:"12"`

	// Booking calendar
	TimeZone         string        `env:"TIMEZONE" envDefault:"Asia/Jakarta"`
	BookingOpenHour  int           `env:"BOOKING_OPEN_HOUR" envDefault:"8"`
	BookingCloseHour int           `env:"BOOKING_CLOSE_HOUR" envDefault:"22"`
	FieldCacheTTL    time.Duration `env:"FIELD_CACHE_TTL" envDefault:"1m"`

	StoragePath string `env:"STORAGE_PATH" envDefault:"./data"`

	// Optional integrations; empty disables them.
	AMQPURL              string `env:"AMQP_URL"`
	AMQPExchange         string `env:"AMQP_EXCHANGE" envDefault:"arenakita.booking"`
	PaymentWebhookSecret string `env:"PAYMENT_WEBHOOK_SECRET"`
	OTELEndpoint         string `env:"OTEL_ENDPOINT"`

	IsProduction bool           `env:"-"`
	Location     *time.Location `env:"-"`
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}
	return Parse()
}

// Parse reads the process environment into a Config and validates it.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.IsProduction = cfg.AppEnv == PROD_STRING

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.TimeZone, err)
	}
	cfg.Location = loc

	if cfg.BookingOpenHour < 0 || cfg.BookingCloseHour > 23 || cfg.BookingOpenHour > cfg.BookingCloseHour {
		return nil, fmt.Errorf("invalid booking hours %d..%d", cfg.BookingOpenHour, cfg.BookingCloseHour)
	}

	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %d", cfg.BcryptCost)
	}

	return cfg, nil
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
