package models

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewValidationError("bad", nil).GetStatusCode())
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("missing").GetStatusCode())
	assert.Equal(t, http.StatusBadGateway, NewProviderError("gemini", "down", nil).GetStatusCode())
	assert.Equal(t, http.StatusInternalServerError, NewInternalError("broken", nil).GetStatusCode())

	// Untyped errors default to 500.
	untyped := &AppError{Type: "mystery"}
	assert.Equal(t, http.StatusInternalServerError, untyped.GetStatusCode())
}

func TestSanitizeErrorDropsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	appErr := NewProviderError("gemini", "generate request failed", cause)

	sanitized := SanitizeError(appErr)

	assert.Equal(t, ErrorTypeProvider, sanitized.Type)
	assert.Equal(t, http.StatusBadGateway, sanitized.StatusCode)
	assert.NotContains(t, sanitized.Error(), "connection refused")
	require.NoError(t, sanitized.Unwrap())
}

func TestSanitizeErrorWrapsUnknownErrors(t *testing.T) {
	sanitized := SanitizeError(errors.New("anything internal"))

	assert.Equal(t, ErrorTypeInternal, sanitized.Type)
	assert.Equal(t, http.StatusInternalServerError, sanitized.StatusCode)
	assert.Equal(t, "internal server error", sanitized.Message)
}
