package models

// GeminiRequestPayload is the body posted by the game client to
// /gemini_request and /echo.
type GeminiRequestPayload struct {
	UserInput string `json:"user_input"`
}

// GameStartRequest is the body posted to /game_start_signal.
type GameStartRequest struct {
	UserInput       string   `json:"user_input"`
	PlayerUsernames []string `json:"player_usernames"`
}

// GameStatusUpdateRequest is the body posted to /game_status_update.
type GameStatusUpdateRequest struct {
	GameID          string   `json:"game_id"`
	PlayerUsernames []string `json:"player_usernames"`
}

// GameCleanupRequest is the body posted to /game_cleanup.
type GameCleanupRequest struct {
	GameID string `json:"game_id"`
}

// TeamQuizRequest is the body posted to /team_quiz.
type TeamQuizRequest struct {
	GameID string   `json:"game_id"`
	Teams  []string `json:"teams"`
}

// StatusResponse is the JSON envelope used by the session endpoints.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	GameID  string `json:"game_id,omitempty"`
}
