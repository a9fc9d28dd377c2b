package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/thaumiel-labs/seraph-relay/internal/config"
	"github.com/thaumiel-labs/seraph-relay/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: models.ServerConfig{Environment: "development"},
		Gemini: models.GeminiConfig{APIKey: "test-key"},
		Cache:  models.CacheConfig{Backend: models.CacheBackendMemory, TTLSeconds: 300},
	}
}

func getPath(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp
}

func TestRoot(t *testing.T) {
	handler := NewDebugHandler(testConfig(), nil)
	app := fiber.New()
	app.Get("/", handler.Root)

	resp := getPath(t, app, "/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "SERAPH relay")
}

func TestDebugInfoRedactsSecrets(t *testing.T) {
	handler := NewDebugHandler(testConfig(), nil)
	app := fiber.New()
	app.Get("/debug_info", handler.DebugInfo)

	resp := getPath(t, app, "/debug_info")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.NotContains(t, body, "test-key")

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &out))

	security, ok := out["security"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, security["gemini_key_configured"])

	database, ok := out["database"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, database["configured"])
}

func TestHealthCheckNoDependencies(t *testing.T) {
	handler := NewHealthHandler(testConfig(), nil, nil)
	app := fiber.New()
	app.Get("/health", handler.HealthCheck)

	resp := getPath(t, app, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &out))
	assert.Equal(t, "healthy", out["status"])

	checks, ok := out["checks"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "not_configured", checks["database"])
	assert.Equal(t, "not_configured", checks["redis"])
}
