package api

import (
	"errors"
	"fmt"

	"github.com/thaumiel-labs/seraph-relay/internal/models"
	"github.com/thaumiel-labs/seraph-relay/internal/services/sessions"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// SessionsHandler serves the game-session lifecycle endpoints.
type SessionsHandler struct {
	svc *sessions.Service
}

// NewSessionsHandler creates a SessionsHandler around the session service.
func NewSessionsHandler(svc *sessions.Service) *SessionsHandler {
	return &SessionsHandler{svc: svc}
}

// GameStartSignal handles POST /game_start_signal. A new server instance id
// is generated here, not by the game client.
func (h *SessionsHandler) GameStartSignal(c *fiber.Ctx) error {
	if msg, ok := validateRequestBody(c, "user_input", "player_usernames"); !ok {
		fiberlog.Warnf("game_start_signal: %s", msg)
		return c.Status(fiber.StatusBadRequest).JSON(models.StatusResponse{Status: "error", Message: msg})
	}

	var payload models.GameStartRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.StatusResponse{Status: "error", Message: "No data provided in request body"})
	}

	fiberlog.Infof("Game start signal received. Usernames: %v", payload.PlayerUsernames)

	serverInstanceID := uuid.NewString()
	gameID, err := h.svc.CreateSession(c.UserContext(), serverInstanceID, payload.PlayerUsernames)
	if err != nil {
		fiberlog.Errorf("game_start_signal: game record creation failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.StatusResponse{
			Status:  "error",
			Message: "Game record creation failed",
		})
	}

	fiberlog.Infof("game_start_signal: game record created, game_id: %s", gameID)
	return c.JSON(models.StatusResponse{
		Status:  "success",
		Message: "Game start signal processed, game record created",
		GameID:  gameID,
	})
}

// GameStatusUpdate handles POST /game_status_update.
func (h *SessionsHandler) GameStatusUpdate(c *fiber.Ctx) error {
	if msg, ok := validateRequestBody(c, "game_id", "player_usernames"); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(models.StatusResponse{Status: "error", Message: msg})
	}

	var payload models.GameStatusUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.StatusResponse{Status: "error", Message: "No data provided in request body"})
	}

	if err := h.svc.UpdateSession(c.UserContext(), payload.GameID, payload.PlayerUsernames); err != nil {
		fiberlog.Errorf("game_status_update: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.StatusResponse{
			Status:  "error",
			Message: err.Error(),
		})
	}

	return c.JSON(models.StatusResponse{
		Status:  "success",
		Message: fmt.Sprintf("Game status updated to 'active' and usernames updated for game_id: %s", payload.GameID),
	})
}

// GameCleanup handles POST /game_cleanup, called when a game server shuts
// down.
func (h *SessionsHandler) GameCleanup(c *fiber.Ctx) error {
	if msg, ok := validateRequestBody(c, "game_id"); !ok {
		fiberlog.Warnf("game_cleanup: %s", msg)
		return c.Status(fiber.StatusBadRequest).JSON(models.StatusResponse{Status: "error", Message: msg})
	}

	var payload models.GameCleanupRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.StatusResponse{Status: "error", Message: "No data provided in request body"})
	}

	fiberlog.Infof("game_cleanup: cleanup request for game_id: %s", payload.GameID)

	// Game servers that never received an id report this sentinel.
	if payload.GameID == models.UnknownGameID {
		fiberlog.Info("game_cleanup: received UNKNOWN_GAME_ID, skipping cleanup")
		return c.JSON(models.StatusResponse{
			Status:  "warning",
			Message: "Skipped cleanup for UNKNOWN_GAME_ID",
		})
	}

	if err := h.svc.DeleteSession(c.UserContext(), payload.GameID); err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Type == models.ErrorTypeNotFound {
			fiberlog.Warnf("game_cleanup: no game found with ID: %s", payload.GameID)
			return c.Status(fiber.StatusNotFound).JSON(models.StatusResponse{
				Status:  "warning",
				Message: fmt.Sprintf("No game found with ID: %s", payload.GameID),
			})
		}
		fiberlog.Errorf("game_cleanup: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.StatusResponse{
			Status:  "error",
			Message: "Internal server error",
		})
	}

	return c.JSON(models.StatusResponse{
		Status:  "success",
		Message: fmt.Sprintf("Game %s cleaned up successfully", payload.GameID),
	})
}
