package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DSN", "postgres://localhost/arenakita")
	t.Setenv("JWT_SECRET", "secret")
}

func TestParseDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessTokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, 8, cfg.BookingOpenHour)
	assert.Equal(t, 22, cfg.BookingCloseHour)
	assert.Equal(t, "Asia/Jakarta", cfg.Location.String())
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestParseMissingRequired(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := Parse()
	require.Error(t, err)
}

func TestParseOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("BOOKING_OPEN_HOUR", "6")
	t.Setenv("BOOKING_CLOSE_HOUR", "23")
	t.Setenv("JWT_ACCESS_TOKEN_TTL", "1h")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, 6, cfg.BookingOpenHour)
	assert.Equal(t, 23, cfg.BookingCloseHour)
	assert.Equal(t, time.Hour, cfg.JWTAccessTokenTTL)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad timezone", "TIMEZONE", "Mars/Olympus"},
		{"bad ttl", "JWT_ACCESS_TOKEN_TTL", "soon"},
		{"open after close", "BOOKING_OPEN_HOUR", "23"},
		{"bcrypt too low", "BCRYPT_COST", "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.val)
			if tt.key == "BOOKING_OPEN_HOUR" {
				t.Setenv("BOOKING_CLOSE_HOUR", "22")
			}

			_, err := Parse()
			assert.Error(t, err)
		})
	}
}
