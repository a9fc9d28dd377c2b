package sessions

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/thaumiel-labs/seraph-relay/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "sessions.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	svc := NewService(db)
	require.NoError(t, svc.AutoMigrate())
	return svc
}

func TestCreateAndGetSession(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	gameID, err := svc.CreateSession(ctx, "game-123", []string{"PlayerOne", "PlayerTwo"})
	require.NoError(t, err)
	assert.Equal(t, "game-123", gameID)

	session, err := svc.GetSession(ctx, "game-123")
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusStarting, session.Status)
	assert.Equal(t, "PlayerOne,PlayerTwo", session.PlayerUsernames)
	assert.False(t, session.StartTime.IsZero())
}

func TestGetSessionNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetSession(context.Background(), "absent")
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.ErrorTypeNotFound, appErr.Type)
}

func TestUpdateSession(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateSession(ctx, "game-123", []string{"PlayerOne"})
	require.NoError(t, err)

	err = svc.UpdateSession(ctx, "game-123", []string{"PlayerOne", "PlayerThree"})
	require.NoError(t, err)

	session, err := svc.GetSession(ctx, "game-123")
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusActive, session.Status)
	assert.Equal(t, "PlayerOne,PlayerThree", session.PlayerUsernames)
}

func TestUpdateSessionNotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.UpdateSession(context.Background(), "absent", []string{"PlayerOne"})
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.ErrorTypeNotFound, appErr.Type)
}

func TestDeleteSession(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateSession(ctx, "game-123", nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSession(ctx, "game-123"))

	_, err = svc.GetSession(ctx, "game-123")
	assert.Error(t, err)

	// Deleting again reports not-found, not success.
	err = svc.DeleteSession(ctx, "game-123")
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.ErrorTypeNotFound, appErr.Type)
}

func TestCreateRound(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateSession(ctx, "game-123", nil)
	require.NoError(t, err)

	roundID, err := svc.CreateRound(ctx, "game-123", 1, "standard")
	require.NoError(t, err)
	assert.NotZero(t, roundID)

	second, err := svc.CreateRound(ctx, "game-123", 2, "standard")
	require.NoError(t, err)
	assert.NotEqual(t, roundID, second)
}
