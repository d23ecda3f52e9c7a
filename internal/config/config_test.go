package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults with api key", func(t *testing.T) {
		t.Setenv("API_KEY", "secret")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "fantaschedina", cfg.ServiceName)
		assert.Equal(t, "secret", cfg.APIKey)
		assert.Empty(t, cfg.TrustedProxies)
	})

	t.Run("missing api key fails", func(t *testing.T) {
		t.Setenv("API_KEY", "")

		_, err := Load()

		assert.Error(t, err)
	})

	t.Run("invalid port fails", func(t *testing.T) {
		t.Setenv("API_KEY", "secret")
		t.Setenv("PORT", "not-a-port")

		_, err := Load()

		assert.Error(t, err)
	})

	t.Run("trusted proxies are split and trimmed", func(t *testing.T) {
		t.Setenv("API_KEY", "secret")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 10.0.0.2 ,")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
	})
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "app",
		DBPassword: "pw",
		DBHost:     "db.local",
		DBPort:     "5433",
		DBName:     "fantaschedina",
	}

	assert.Equal(t, "postgres://app:pw@db.local:5433/fantaschedina?sslmode=disable", cfg.GetDBConnString())
}
