package api

import (
	"errors"

	"github.com/thaumiel-labs/seraph-relay/internal/models"
	"github.com/thaumiel-labs/seraph-relay/internal/services/dispatch"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
)

// DispatchHandler serves the main AI relay endpoint consumed by the game
// client. Replies are plain text; the client renders them verbatim.
type DispatchHandler struct {
	dispatcher *dispatch.Dispatcher
}

// NewDispatchHandler creates a DispatchHandler around the dispatcher.
func NewDispatchHandler(dispatcher *dispatch.Dispatcher) *DispatchHandler {
	return &DispatchHandler{dispatcher: dispatcher}
}

// GeminiRequest handles POST /gemini_request.
func (h *DispatchHandler) GeminiRequest(c *fiber.Ctx) error {
	if msg, ok := validateRequestBody(c, "user_input"); !ok {
		return c.Status(fiber.StatusBadRequest).SendString(msg)
	}

	var payload models.GeminiRequestPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("No data provided in request body")
	}

	fiberlog.Infof("Received input from Roblox: %s", payload.UserInput)

	reply, err := h.dispatcher.Dispatch(c.UserContext(), payload.UserInput)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Type == models.ErrorTypeProvider {
			// Fixed body; the underlying cause stays in the logs.
			return c.Status(appErr.GetStatusCode()).SendString(models.GeminiErrorBody)
		}
		fiberlog.Errorf("dispatch failed: %v", err)
		sanitized := models.SanitizeError(err)
		return c.Status(sanitized.GetStatusCode()).JSON(models.StatusResponse{
			Status:  "error",
			Message: sanitized.Message,
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(reply)
}

// Echo handles POST /echo, a testing aid that returns the input verbatim.
func (h *DispatchHandler) Echo(c *fiber.Ctx) error {
	if msg, ok := validateRequestBody(c, "user_input"); !ok {
		return c.Status(fiber.StatusBadRequest).SendString(msg)
	}

	var payload models.GeminiRequestPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("No data provided in request body")
	}

	fiberlog.Infof("Echoing back to Roblox: %s", payload.UserInput)
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(payload.UserInput)
}
