package models

import "time"

// Game session status values as stored in the games table.
const (
	SessionStatusStarting = "starting"
	SessionStatusActive   = "active"
)

// UnknownGameID is sent by game servers that never received a game id;
// cleanup requests carrying it are acknowledged but skipped.
const UnknownGameID = "UNKNOWN_GAME_ID"

// GameSession is one game-server instance's session record.
type GameSession struct {
	GameID    string    `gorm:"column:game_id;primaryKey" json:"game_id"`
	StartTime time.Time `gorm:"column:start_time" json:"start_time"`
	Status    string    `gorm:"column:status" json:"status"`

	// PlayerUsernames is stored comma-joined, matching what the game
	// client sends and expects back.
	PlayerUsernames string `gorm:"column:player_usernames" json:"player_usernames"`
}

func (GameSession) TableName() string { return "games" }

// GameRound is one round within a session.
type GameRound struct {
	RoundID     uint      `gorm:"column:round_id;primaryKey;autoIncrement" json:"round_id"`
	GameID      string    `gorm:"column:game_id;index" json:"game_id"`
	RoundNumber int       `gorm:"column:round_number" json:"round_number"`
	RoundType   string    `gorm:"column:round_type" json:"round_type"`
	StartTime   time.Time `gorm:"column:start_time" json:"start_time"`
	Status      string    `gorm:"column:status" json:"status"`
}

func (GameRound) TableName() string { return "rounds" }
