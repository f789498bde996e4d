package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodeMapping(t *testing.T) {
	tests := []struct {
		err    *Error
		status int
	}{
		{Unauthorized("no session"), http.StatusUnauthorized},
		{Forbidden("wrong role"), http.StatusForbidden},
		{NotFound("consultation"), http.StatusNotFound},
		{InvalidState("consultation is not pending"), http.StatusConflict},
		{Validation("unknown specialty"), http.StatusBadRequest},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.err.StatusCode())
		assert.Equal(t, tt.status, StatusOf(tt.err))
	}
}

func TestCodeOfWrappedError(t *testing.T) {
	base := NotFound("consultation")
	wrapped := fmt.Errorf("accept: %w", base)

	assert.Equal(t, CodeNotFound, CodeOf(wrapped))
	assert.True(t, IsCode(wrapped, CodeNotFound))
	assert.False(t, IsCode(wrapped, CodeForbidden))
}

func TestCodeOfPlainError(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("plain")))
}

func TestErrorMessageIncludesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause)

	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestNotFoundMessage(t *testing.T) {
	assert.Equal(t, "consultation not found", NotFound("consultation").Error())
}
