package api

import (
	"context"
	"time"

	"github.com/thaumiel-labs/seraph-relay/internal/config"
	"github.com/thaumiel-labs/seraph-relay/internal/services/database"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// HealthHandler reports the health of the relay and its dependencies.
type HealthHandler struct {
	cfg         *config.Config
	db          *database.DB
	redisClient *redis.Client
}

// NewHealthHandler creates a health check handler. Both db and redisClient
// may be nil when the corresponding dependency is not configured.
func NewHealthHandler(cfg *config.Config, db *database.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// HealthCheck returns the health status of the service and its dependencies.
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	dbStatus := h.checkDatabase()
	cacheStatus := h.checkRedis()

	overallStatus := "healthy"
	statusCode := fiber.StatusOK

	if dbStatus == "unhealthy" || cacheStatus == "unhealthy" {
		overallStatus = "degraded"
		statusCode = fiber.StatusServiceUnavailable
	}

	return c.Status(statusCode).JSON(fiber.Map{
		"status":    overallStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    cacheStatus,
		},
	})
}

func (h *HealthHandler) checkDatabase() string {
	if h.db == nil {
		return "not_configured"
	}
	if err := h.db.Ping(); err != nil {
		return "unhealthy"
	}
	return "healthy"
}

func (h *HealthHandler) checkRedis() string {
	if h.redisClient == nil {
		return "not_configured"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		return "unhealthy"
	}
	return "healthy"
}
