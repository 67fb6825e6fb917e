package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"decode failure", ErrDecode, http.StatusBadRequest},
		{"no face is not a transport failure", ErrNoFace, http.StatusOK},
		{"invalid user", ErrInvalidUser, http.StatusUnauthorized},
		{"storage down", ErrStorageUnavailable, http.StatusInternalServerError},
		{"wrapped storage error", fmt.Errorf("insert: %w", ErrStorageUnavailable), http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, StatusCode(tt.err))
		})
	}
}

func TestMessageNeverLeaksInternals(t *testing.T) {
	internal := errors.New("dial tcp 10.0.0.5:27017: connection refused")

	assert.Equal(t, "Detection failed", Message(internal))
	assert.NotContains(t, Message(fmt.Errorf("query: %w", ErrStorageUnavailable)), "10.0.0.5")
	assert.Equal(t, "Database unavailable", Message(fmt.Errorf("query: %w", ErrStorageUnavailable)))
	assert.Equal(t, "Invalid image format", Message(ErrDecode))
	assert.Equal(t, "No face detected", Message(ErrNoFace))
	assert.Equal(t, "Unauthorized", Message(ErrInvalidUser))
}
