package config

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, "https://forkify-api.herokuapp.com/api/v2/recipes", cfg.RecipeAPIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RecipeFetchTimeout)
	assert.Equal(t, "file", cfg.StorageBackend)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, 8760*time.Hour, cfg.ProfileTTL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("STORAGE_BACKEND", "mongo")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("RECIPE_FETCH_TIMEOUT", "0s")
	t.Setenv("ALLOWED_ORIGINS", "https://a.test;https://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, "mongo", cfg.StorageBackend)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Zero(t, cfg.RecipeFetchTimeout)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.AllowedOrigins)
}

func TestLoadRejectsNegativeTimeout(t *testing.T) {
	t.Setenv("RECIPE_FETCH_TIMEOUT", "-1s")

	_, err := Load()
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{LogLevel: "debug", LogFormat: "text"}
	assert.True(t, cfg.NewLogger().Enabled(context.Background(), slog.LevelDebug))

	cfg = &Config{LogLevel: "nonsense"}
	logger := cfg.NewLogger()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
}
