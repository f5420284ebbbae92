package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("PORT", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("ORDER_MAX_RETRIES", "")
	t.Setenv("INVOICE_LOCALE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 3, cfg.OrderMaxRetries)
	assert.Equal(t, "en-IN", cfg.InvoiceLocale)
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	t.Run("driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mysql")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("retries", func(t *testing.T) {
		t.Setenv("ORDER_MAX_RETRIES", "abc")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("ttl", func(t *testing.T) {
		t.Setenv("JWT_TTL", "7days")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestPostgresDSN(t *testing.T) {
	cfg := Config{
		PostgresHost: "db", PostgresPort: 5433, PostgresUser: "u",
		PostgresPassword: "p", PostgresDB: "shop", PostgresSSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=shop sslmode=disable", cfg.PostgresDSN())

	cfg.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", cfg.PostgresDSN())
}
