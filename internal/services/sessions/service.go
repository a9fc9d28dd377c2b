// Package sessions tracks game-session records: creation, status
// transitions, and cleanup when a game server shuts down.
package sessions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thaumiel-labs/seraph-relay/internal/models"

	fiberlog "github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// Service provides CRUD over game sessions and rounds.
type Service struct {
	db *gorm.DB
}

// NewService creates a session service on the given database handle.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// AutoMigrate creates or updates the games and rounds tables.
func (s *Service) AutoMigrate() error {
	return s.db.AutoMigrate(&models.GameSession{}, &models.GameRound{})
}

// CreateSession inserts a new session record with status "starting" and
// returns its game id.
func (s *Service) CreateSession(ctx context.Context, gameID string, usernames []string) (string, error) {
	session := models.GameSession{
		GameID:          gameID,
		StartTime:       time.Now().UTC(),
		Status:          models.SessionStatusStarting,
		PlayerUsernames: strings.Join(usernames, ","),
	}

	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		fiberlog.Errorf("sessions: insert failed for game_id %s: %v", gameID, err)
		return "", fmt.Errorf("failed to create game record: %w", err)
	}

	return session.GameID, nil
}

// UpdateSession marks a session active and replaces its player list.
// Returns a not-found error when the game id does not exist.
func (s *Service) UpdateSession(ctx context.Context, gameID string, usernames []string) error {
	result := s.db.WithContext(ctx).
		Model(&models.GameSession{}).
		Where("game_id = ?", gameID).
		Updates(map[string]any{
			"status":           models.SessionStatusActive,
			"player_usernames": strings.Join(usernames, ","),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update game record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError(fmt.Sprintf("game_id '%s' not found or no update performed", gameID))
	}

	fiberlog.Infof("sessions: game %s updated to '%s'", gameID, models.SessionStatusActive)
	return nil
}

// GetSession fetches a session record by game id.
func (s *Service) GetSession(ctx context.Context, gameID string) (*models.GameSession, error) {
	var session models.GameSession
	err := s.db.WithContext(ctx).First(&session, "game_id = ?", gameID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError(fmt.Sprintf("no game found with ID: %s", gameID))
		}
		return nil, fmt.Errorf("failed to fetch game record: %w", err)
	}
	return &session, nil
}

// DeleteSession removes a session record. Returns a not-found error when
// the game id does not exist.
func (s *Service) DeleteSession(ctx context.Context, gameID string) error {
	// Verify the game exists first so callers can distinguish a missing
	// record from a successful cleanup.
	if _, err := s.GetSession(ctx, gameID); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(&models.GameSession{}, "game_id = ?", gameID).Error; err != nil {
		return fmt.Errorf("failed to delete game record: %w", err)
	}

	fiberlog.Infof("sessions: game %s cleaned up", gameID)
	return nil
}

// CreateRound inserts a round record linked to an existing session and
// returns its round id.
func (s *Service) CreateRound(ctx context.Context, gameID string, roundNumber int, roundType string) (uint, error) {
	round := models.GameRound{
		GameID:      gameID,
		RoundNumber: roundNumber,
		RoundType:   roundType,
		StartTime:   time.Now().UTC(),
		Status:      models.SessionStatusStarting,
	}

	if err := s.db.WithContext(ctx).Create(&round).Error; err != nil {
		return 0, fmt.Errorf("failed to create round record: %w", err)
	}
	return round.RoundID, nil
}
