package models

// TeamTraits maps each selectable team to its personality traits, used to
// build the quiz-generation prompt and to validate incoming team names.
var TeamTraits = map[string][]string{
	"EMBER":  {"Fiery", "Passionate", "Unstoppable"},
	"TERRA":  {"Grounded", "Steady", "Resilient"},
	"VEIL":   {"Stealthy", "Scheming", "Mysterious"},
	"AERIAL": {"Free", "Inventive", "Adventurous"},
	"HALO":   {"Bright", "Empathetic", "Unifying"},
	"FLUX":   {"Adaptive", "Quick", "Resourceful"},
	"NOVA":   {"Explosive", "Revolutionary", "Destructive"},
	"TEMPO":  {"Methodical", "Precise", "Strategic"},
}

// AnswerChoice is one quiz answer mapped to a team.
type AnswerChoice struct {
	ChoiceText            string `json:"choice_text"`
	CorrespondingCategory string `json:"corresponding_category"`
}

// QuizQuestion is one personality-quiz question.
type QuizQuestion struct {
	QuestionText  string         `json:"question_text"`
	AnswerChoices []AnswerChoice `json:"answer_choices"`
}

// QuizData is the structured payload returned to the game client.
type QuizData struct {
	Questions []QuizQuestion `json:"questions"`
}

// TeamQuizResponse is the JSON envelope for /team_quiz.
type TeamQuizResponse struct {
	Status        string    `json:"status"`
	Message       string    `json:"message"`
	GameID        string    `json:"game_id,omitempty"`
	QuizData      *QuizData `json:"quiz_data,omitempty"`
	UsingFallback bool      `json:"using_fallback"`
	ValidTeams    []string  `json:"valid_teams,omitempty"`
}
