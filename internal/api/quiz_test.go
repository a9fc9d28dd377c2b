package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/thaumiel-labs/seraph-relay/internal/models"
	"github.com/thaumiel-labs/seraph-relay/internal/services/gemini"
	"github.com/thaumiel-labs/seraph-relay/internal/services/quiz"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	response string
	err      error
}

func (s *stubGenerator) GenerateStructured(context.Context, string, gemini.StructuredOptions) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func newQuizApp(gen quiz.Generator) *fiber.App {
	handler := NewQuizHandler(quiz.NewService(gen))
	app := fiber.New()
	app.Post("/team_quiz", handler.TeamQuiz)
	return app
}

func decodeQuiz(t *testing.T, resp *http.Response) models.TeamQuizResponse {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var out models.TeamQuizResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestTeamQuizSuccess(t *testing.T) {
	raw, err := json.Marshal(models.QuizData{
		Questions: []models.QuizQuestion{
			{
				QuestionText: "What would you do with a day off?",
				AnswerChoices: []models.AnswerChoice{
					{ChoiceText: "Adventure!", CorrespondingCategory: "EMBER"},
					{ChoiceText: "Relax outdoors.", CorrespondingCategory: "TERRA"},
				},
			},
		},
	})
	require.NoError(t, err)

	app := newQuizApp(&stubGenerator{response: string(raw)})

	resp := postJSON(t, app, "/team_quiz", `{"game_id": "game-123", "teams": ["EMBER", "TERRA"]}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeQuiz(t, resp)
	assert.Equal(t, "success", out.Status)
	assert.Equal(t, "Quiz questions generated successfully", out.Message)
	assert.Equal(t, "game-123", out.GameID)
	assert.False(t, out.UsingFallback)
	require.NotNil(t, out.QuizData)
	assert.Len(t, out.QuizData.Questions, 1)
}

func TestTeamQuizFallback(t *testing.T) {
	app := newQuizApp(&stubGenerator{err: errors.New("upstream unavailable")})

	resp := postJSON(t, app, "/team_quiz", `{"game_id": "game-123", "teams": ["EMBER", "TERRA"]}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeQuiz(t, resp)
	assert.Equal(t, "success", out.Status)
	assert.Contains(t, out.Message, "(using fallback questions)")
	assert.True(t, out.UsingFallback)
	require.NotNil(t, out.QuizData)
	assert.Len(t, out.QuizData.Questions, 5)
}

func TestTeamQuizInvalidTeams(t *testing.T) {
	app := newQuizApp(&stubGenerator{response: "{}"})

	resp := postJSON(t, app, "/team_quiz", `{"game_id": "game-123", "teams": ["SHADOW", "GHOST"]}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decodeQuiz(t, resp)
	assert.Equal(t, "error", out.Status)
	assert.Equal(t, "No valid team names provided", out.Message)
	assert.Equal(t, quiz.KnownTeams(), out.ValidTeams)
}

func TestTeamQuizMissingFields(t *testing.T) {
	app := newQuizApp(&stubGenerator{response: "{}"})

	resp := postJSON(t, app, "/team_quiz", `{"game_id": "game-123"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decodeQuiz(t, resp)
	assert.Contains(t, out.Message, "teams")
}
