package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(values map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{"PGSQL_URL": "postgres://pd@localhost/pd"}))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageDriverPostgres, cfg.StorageDriver)
	assert.Equal(t, 10000, cfg.BulkBatchSize)
	assert.Equal(t, 90*time.Second, cfg.RecencyWindow)
	assert.Equal(t, "300-M", cfg.RateLimit)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.RunMigrations)
	assert.Empty(t, cfg.JWTIssuer)
}

func TestFromViper_PostgresNeedsURL(t *testing.T) {
	_, err := fromViper(newViper(nil))

	assert.ErrorContains(t, err, "PGSQL_URL")
}

func TestFromViper_MemoryDriver(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{"STORAGE_DRIVER": " Memory "}))

	require.NoError(t, err)
	assert.Equal(t, StorageDriverMemory, cfg.StorageDriver)
}

func TestFromViper_UnknownDriver(t *testing.T) {
	_, err := fromViper(newViper(map[string]any{"STORAGE_DRIVER": "mongo"}))

	assert.ErrorContains(t, err, "unsupported STORAGE_DRIVER")
}

func TestFromViper_InvalidBatchSizeFallsBack(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{"STORAGE_DRIVER": "memory", "BULK_BATCH_SIZE": -5}))

	require.NoError(t, err)
	assert.Equal(t, 10000, cfg.BulkBatchSize)
}

func TestFromViper_RecencyWindow(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{"STORAGE_DRIVER": "memory", "RECENCY_WINDOW": "2m"}))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, cfg.RecencyWindow)

	_, err = fromViper(newViper(map[string]any{"STORAGE_DRIVER": "memory", "RECENCY_WINDOW": "soon"}))
	assert.ErrorContains(t, err, "RECENCY_WINDOW")

	_, err = fromViper(newViper(map[string]any{"STORAGE_DRIVER": "memory", "RECENCY_WINDOW": "-1s"}))
	assert.ErrorContains(t, err, "RECENCY_WINDOW")
}

func TestFromViper_DefaultSecretRejectedInProduction(t *testing.T) {
	_, err := fromViper(newViper(map[string]any{"STORAGE_DRIVER": "memory", "IS_PRODUCTION": true}))

	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestFromViper_CORSOrigins(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{
		"STORAGE_DRIVER":       "memory",
		"CORS_ALLOWED_ORIGINS": "https://a.example.nhs.uk, https://b.example.nhs.uk,,",
	}))

	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example.nhs.uk", "https://b.example.nhs.uk"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_JWTIssuer(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")

	t.Run("empty value disables the issuer check", func(t *testing.T) {
		t.Setenv("JWT_ISSUER", "")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Empty(t, cfg.JWTIssuer)
	})

	t.Run("set value is used", func(t *testing.T) {
		t.Setenv("JWT_ISSUER", "https://idp.example.org")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "https://idp.example.org", cfg.JWTIssuer)
	})
}
