package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thaumiel-labs/seraph-relay/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFileAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
gemini:
  api_key: "test-key"
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "*", cfg.Server.AllowedOrigins)
	assert.Equal(t, "info", cfg.Server.LogLevel)

	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.InDelta(t, 0.35, cfg.Gemini.Generation.Temperature, 0.001)
	assert.InDelta(t, 0.95, cfg.Gemini.Generation.TopP, 0.001)
	assert.InDelta(t, 40, cfg.Gemini.Generation.TopK, 0.001)
	assert.Equal(t, int32(150), cfg.Gemini.Generation.MaxOutputTokens)

	assert.Equal(t, models.CacheBackendMemory, cfg.Cache.Backend)
	assert.Equal(t, 300, cfg.Cache.TTLSeconds)
	assert.Equal(t, 1000, cfg.Dispatch.ThrottleIntervalMs)

	assert.Nil(t, cfg.Database)
}

func TestLoadFromFileExplicitValuesWin(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
  environment: "production"
gemini:
  api_key: "test-key"
  model: "gemini-2.5-pro"
  generation:
    temperature: 0.7
cache:
  backend: "redis"
  redis_url: "redis://localhost:6379"
  ttl_seconds: 60
dispatch:
  throttle_interval_ms: 250
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.InDelta(t, 0.7, cfg.Gemini.Generation.Temperature, 0.001)
	assert.Equal(t, models.CacheBackendRedis, cfg.Cache.Backend)
	assert.Equal(t, 60, cfg.Cache.TTLSeconds)
	assert.Equal(t, 250, cfg.Dispatch.ThrottleIntervalMs)
	assert.True(t, cfg.IsProduction())
}

func TestLoadFromFileEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_GEMINI_KEY", "key-from-env")
	t.Setenv("TEST_PORT", "")

	path := writeConfig(t, `
server:
  port: "${TEST_PORT:-3000}"
gemini:
  api_key: "${TEST_GEMINI_KEY}"
  model: "${TEST_MODEL:-gemini-2.0-flash}"
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "key-from-env", cfg.Gemini.APIKey)
	assert.Equal(t, "3000", cfg.Server.Port, "empty env var should fall back to default")
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
}

func TestLoadFromFileRejectsBadPaths(t *testing.T) {
	_, err := LoadFromFile("config.json")
	assert.Error(t, err)

	_, err = LoadFromFile("../../etc/config.yaml")
	assert.Error(t, err)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Gemini: models.GeminiConfig{APIKey: "test-key"},
			Cache:  models.CacheConfig{Backend: models.CacheBackendMemory},
		}
	}

	tests := []struct {
		name     string
		modifyFn func(*Config)
		wantErr  string
	}{
		{
			name:     "valid",
			modifyFn: func(*Config) {},
		},
		{
			name:     "missing api key",
			modifyFn: func(cfg *Config) { cfg.Gemini.APIKey = "" },
			wantErr:  "api_key",
		},
		{
			name: "redis backend without url",
			modifyFn: func(cfg *Config) {
				cfg.Cache.Backend = models.CacheBackendRedis
			},
			wantErr: "redis_url",
		},
		{
			name: "postgres without dsn or host",
			modifyFn: func(cfg *Config) {
				cfg.Database = &models.DatabaseConfig{Type: models.PostgreSQL}
			},
			wantErr: "dsn or host",
		},
		{
			name: "sqlite without file path",
			modifyFn: func(cfg *Config) {
				cfg.Database = &models.DatabaseConfig{Type: models.SQLite}
			},
			wantErr: "file_path",
		},
		{
			name: "unknown database type",
			modifyFn: func(cfg *Config) {
				cfg.Database = &models.DatabaseConfig{Type: "oracle"}
			},
			wantErr: "unsupported database type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.modifyFn(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestGetNormalizedLogLevel(t *testing.T) {
	cfg := &Config{}
	cfg.Server.LogLevel = "  DEBUG "
	assert.Equal(t, "debug", cfg.GetNormalizedLogLevel())
}
