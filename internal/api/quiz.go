package api

import (
	"errors"

	"github.com/thaumiel-labs/seraph-relay/internal/models"
	"github.com/thaumiel-labs/seraph-relay/internal/services/quiz"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
)

// QuizHandler serves the team quiz generation endpoint.
type QuizHandler struct {
	svc *quiz.Service
}

// NewQuizHandler creates a QuizHandler around the quiz service.
func NewQuizHandler(svc *quiz.Service) *QuizHandler {
	return &QuizHandler{svc: svc}
}

// TeamQuiz handles POST /team_quiz.
func (h *QuizHandler) TeamQuiz(c *fiber.Ctx) error {
	if msg, ok := validateRequestBody(c, "game_id", "teams"); !ok {
		fiberlog.Warnf("team_quiz: %s", msg)
		return c.Status(fiber.StatusBadRequest).JSON(models.TeamQuizResponse{Status: "error", Message: msg})
	}

	var payload models.TeamQuizRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.TeamQuizResponse{Status: "error", Message: "No data provided in request body"})
	}

	fiberlog.Infof("Team quiz data received for game ID: %s", payload.GameID)

	data, usedFallback, err := h.svc.GenerateQuiz(c.UserContext(), payload.Teams)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Type == models.ErrorTypeValidation {
			return c.Status(fiber.StatusBadRequest).JSON(models.TeamQuizResponse{
				Status:     "error",
				Message:    appErr.Message,
				GameID:     payload.GameID,
				ValidTeams: quiz.KnownTeams(),
			})
		}
		fiberlog.Errorf("team_quiz: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.TeamQuizResponse{
			Status:  "error",
			Message: "Internal server error",
		})
	}

	message := "Quiz questions generated successfully"
	if usedFallback {
		message += " (using fallback questions)"
	}

	return c.JSON(models.TeamQuizResponse{
		Status:        "success",
		Message:       message,
		GameID:        payload.GameID,
		QuizData:      data,
		UsingFallback: usedFallback,
	})
}
