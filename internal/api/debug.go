package api

import (
	"time"

	"github.com/thaumiel-labs/seraph-relay/internal/config"
	"github.com/thaumiel-labs/seraph-relay/internal/services/database"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
)

// DebugHandler serves deployment verification endpoints.
type DebugHandler struct {
	cfg *config.Config
	db  *database.DB
}

// NewDebugHandler creates a DebugHandler.
func NewDebugHandler(cfg *config.Config, db *database.DB) *DebugHandler {
	return &DebugHandler{cfg: cfg, db: db}
}

// Root handles GET /, a basic liveness text response.
func (h *DebugHandler) Root(c *fiber.Ctx) error {
	fiberlog.Infof("Root route accessed, database configured: %t", h.db != nil)
	return c.SendString("Hello, World! This is the SERAPH relay with Postgres!")
}

// DebugInfo handles GET /debug_info with diagnostic configuration state.
// Secrets are reported as booleans only.
func (h *DebugHandler) DebugInfo(c *fiber.Ctx) error {
	dbInfo := fiber.Map{
		"configured": h.db != nil,
	}
	if h.db != nil {
		dbInfo["driver"] = h.db.DriverName()
		if err := h.db.Ping(); err != nil {
			dbInfo["test_connection"] = "failed"
		} else {
			dbInfo["test_connection"] = "success"
		}
	}

	return c.JSON(fiber.Map{
		"database": dbInfo,
		"security": fiber.Map{
			"gemini_key_configured": h.cfg.Gemini.APIKey != "",
		},
		"cache": fiber.Map{
			"backend":     h.cfg.Cache.Backend,
			"ttl_seconds": h.cfg.Cache.TTLSeconds,
		},
		"environment": h.cfg.Server.Environment,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}
