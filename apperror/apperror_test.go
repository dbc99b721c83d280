package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err    *AppError
		status int
	}{
		{NewValidationError("v", nil), http.StatusBadRequest},
		{NewBadRequestError("b", nil), http.StatusBadRequest},
		{NewNotFoundError("n", nil), http.StatusNotFound},
		{NewAuthError("a", nil), http.StatusUnauthorized},
		{NewDatabaseError("d", nil), http.StatusInternalServerError},
		{NewConfigError("c", nil), http.StatusInternalServerError},
		{NewInternalError("i", nil), http.StatusInternalServerError},
		{NewAppError(UnknownError, "u", nil), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.err.StatusCode(), tt.err.Message)
	}
}

func TestUnwrapAndMessage(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	appErr := NewDatabaseError("Gagal login", cause)

	assert.ErrorIs(t, appErr, cause)
	assert.Equal(t, "Gagal login: connection refused", appErr.Error())

	// The envelope never exposes the underlying cause.
	env := appErr.ToEnvelope()
	assert.Equal(t, false, env.Status)
	assert.Equal(t, "Gagal login", env.Message)
}

func TestFromError(t *testing.T) {
	t.Parallel()

	appErr := NewAuthError("Password salah", nil)

	got, ok := FromError(appErr)
	require.True(t, ok)
	assert.Same(t, appErr, got)

	// Wrapped AppErrors are still recovered through the chain.
	got, ok = FromError(fmt.Errorf("handler: %w", appErr))
	require.True(t, ok)
	assert.Same(t, appErr, got)

	_, ok = FromError(errors.New("plain"))
	assert.False(t, ok)
	_, ok = FromError(nil)
	assert.False(t, ok)
}

func TestTypePredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFound(NewNotFoundError("n", nil)))
	assert.True(t, IsAuthError(NewAuthError("a", nil)))
	assert.True(t, IsValidationError(NewValidationError("v", nil)))
	assert.True(t, IsDatabaseError(NewDatabaseError("d", nil)))
	assert.False(t, IsNotFound(NewAuthError("a", nil)))
}
