// Package quiz generates team personality quizzes for the in-game sorting
// sequence. Questions come from Gemini as schema-constrained JSON, with a
// predefined question bank as fallback when the API is unavailable.
package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/thaumiel-labs/seraph-relay/internal/models"
	"github.com/thaumiel-labs/seraph-relay/internal/services/gemini"
	"github.com/thaumiel-labs/seraph-relay/internal/utils"

	fiberlog "github.com/gofiber/fiber/v2/log"
	"google.golang.org/genai"
)

const (
	quizTemperature     = 0.65
	quizTopP            = 0.9
	quizTopK            = 40
	quizMaxOutputTokens = 1500
)

// Generator is the structured-output completion capability the quiz
// service builds on.
type Generator interface {
	GenerateStructured(ctx context.Context, prompt string, opts gemini.StructuredOptions) (string, error)
}

// Service generates quizzes for a selection of teams.
type Service struct {
	gen Generator
}

// NewService creates a quiz service over the given generator.
func NewService(gen Generator) *Service {
	return &Service{gen: gen}
}

// ValidateTeams filters the requested team names down to known ones.
func ValidateTeams(teams []string) []string {
	valid := make([]string, 0, len(teams))
	for _, team := range teams {
		if _, ok := models.TeamTraits[team]; ok {
			valid = append(valid, team)
		} else {
			fiberlog.Warnf("quiz: unknown team name: %s", team)
		}
	}
	return valid
}

// KnownTeams lists all selectable team names in a stable order.
func KnownTeams() []string {
	return []string{"EMBER", "TERRA", "VEIL", "AERIAL", "HALO", "FLUX", "NOVA", "TEMPO"}
}

// GenerateQuiz produces five questions for the given teams. It returns the
// quiz data and whether the fallback bank was used. Team validation errors
// are the only error returns; generation failures degrade to the fallback.
func (s *Service) GenerateQuiz(ctx context.Context, teams []string) (*models.QuizData, bool, error) {
	valid := ValidateTeams(teams)
	if len(valid) == 0 {
		return nil, false, models.NewValidationError("No valid team names provided", nil)
	}
	if len(valid) < 2 || len(valid) > 4 {
		return nil, false, models.NewValidationError(
			fmt.Sprintf("Invalid number of teams: %d. Must be 2-4 teams.", len(valid)), nil)
	}

	raw, err := s.gen.GenerateStructured(ctx, buildPrompt(valid), gemini.StructuredOptions{
		Temperature:     quizTemperature,
		TopP:            quizTopP,
		TopK:            quizTopK,
		MaxOutputTokens: quizMaxOutputTokens,
		Schema:          quizResponseSchema(),
		SafetySettings:  quizSafetySettings(),
	})
	if err != nil {
		fiberlog.Errorf("quiz: Gemini generation failed, using fallback questions: %v", err)
		return fallbackQuestions(valid), true, nil
	}

	var data models.QuizData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		fiberlog.Errorf("quiz: failed to parse Gemini response as JSON, using fallback questions: %v", err)
		return fallbackQuestions(valid), true, nil
	}
	if len(data.Questions) == 0 {
		fiberlog.Error("quiz: empty question list from Gemini, using fallback questions")
		return fallbackQuestions(valid), true, nil
	}

	fiberlog.Infof("quiz: generated %d questions for teams %v", len(data.Questions), valid)
	return &data, false, nil
}

// buildPrompt assembles the quiz-generation prompt for the selected teams.
func buildPrompt(teams []string) string {
	descriptions := make([]string, 0, len(teams))
	for _, team := range teams {
		traits := strings.Join(models.TeamTraits[team], ", ")
		descriptions = append(descriptions, fmt.Sprintf("%s (%s)", team, traits))
	}

	buf := utils.Get()
	defer utils.Put(buf)

	fmt.Fprintf(buf, "Generate 5 short, fun, personality-quiz style questions for players aged 8-18 in a Roblox game. \n")
	fmt.Fprintf(buf, "Each question should have exactly %d answer choices, with each choice corresponding to one of these team personalities:\n", len(teams))
	fmt.Fprintf(buf, "%s\n\n", strings.Join(descriptions, "; "))
	buf.WriteString(`Requirements:
1. Questions should be brief, clear, and age-appropriate
2. Each answer choice must correspond to ONE specific team from the list
`)
	fmt.Fprintf(buf, "3. Keep the corresponding_category strictly to one of: %s\n", strings.Join(teams, ", "))
	fmt.Fprintf(buf, "4. Each question should have exactly %d answer choices\n", len(teams))
	buf.WriteString(`5. Make questions relatable to young players (hobbies, school, friends, games, etc.)
6. Focus on personality traits, preferences, and situations
7. Use simple language appropriate for the age group
8. Avoid mature themes, complex situations, or overly abstract concepts

Example question format:
"What would you do if you found a secret door in your school?"
- "Burst through it immediately to see what's on the other side!" (EMBER)
- "Carefully examine it first and make a plan before proceeding." (TERRA)

Return exactly 5 questions in the specified JSON format, with each answer choice mapping to one team category.
`)

	return buf.String()
}

// quizResponseSchema constrains Gemini's output to the quiz JSON shape.
func quizResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"questions"},
		Properties: map[string]*genai.Schema{
			"questions": {
				Type:        genai.TypeArray,
				Description: "List of quiz questions.",
				Items: &genai.Schema{
					Type:     genai.TypeObject,
					Required: []string{"question_text", "answer_choices"},
					Properties: map[string]*genai.Schema{
						"question_text": {
							Type:        genai.TypeString,
							Description: "The quiz question being asked.",
						},
						"answer_choices": {
							Type:        genai.TypeArray,
							Description: "Four answer choices.",
							Items: &genai.Schema{
								Type:     genai.TypeObject,
								Required: []string{"choice_text", "corresponding_category"},
								Properties: map[string]*genai.Schema{
									"choice_text": {
										Type:        genai.TypeString,
										Description: "The text of the answer choice.",
									},
									"corresponding_category": {
										Type:        genai.TypeString,
										Description: "The category this choice corresponds to.",
									},
								},
							},
						},
					},
				},
			},
		},
	}
}

// quizSafetySettings blocks most harm categories; the audience is children.
func quizSafetySettings() []*genai.SafetySetting {
	return []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockLowAndAbove},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockLowAndAbove},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockLowAndAbove},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockLowAndAbove},
		{Category: genai.HarmCategoryCivicIntegrity, Threshold: genai.HarmBlockThresholdBlockNone},
	}
}
