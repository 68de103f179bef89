package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/tasklist-api/internal/domain"
	"github.com/phrazzld/tasklist-api/internal/service/auth"
	"github.com/phrazzld/tasklist-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"task not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusUnprocessableEntity},
		{"invalid entity", store.ErrInvalidEntity, http.StatusUnprocessableEntity},
		{"wrapped task not found", fmt.Errorf("lookup: %w", store.ErrTaskNotFound), http.StatusNotFound},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Task not found", GetSafeErrorMessage(store.ErrTaskNotFound))
	assert.Equal(t, "Email already exists", GetSafeErrorMessage(store.ErrEmailExists))

	// Internal detail never leaks into the safe message.
	internal := errors.New("pq: duplicate key violates constraint users_email_key")
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(internal))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	t.Run("valid payload", func(t *testing.T) {
		t.Parallel()

		status := "pending"
		req := CreateTaskRequest{Title: "Fine", Status: &status}
		assert.Nil(t, validateStruct(req))
	})

	t.Run("field names use json tags", func(t *testing.T) {
		t.Parallel()

		req := RegisterRequest{}
		fieldErrors := validateStruct(req)
		assert.Contains(t, fieldErrors, "name")
		assert.Contains(t, fieldErrors, "email")
		assert.Contains(t, fieldErrors, "password")
	})

	t.Run("length limits count runes in both layers", func(t *testing.T) {
		t.Parallel()

		// Request and domain validation must agree on what fits, or a
		// payload accepted here fails later inside the store.
		title := strings.Repeat("é", domain.MaxTaskTitleLength)
		req := UpdateTaskRequest{Title: &title}
		assert.Nil(t, validateStruct(req))

		task := domain.Task{
			ID:     uuid.New(),
			UserID: uuid.New(),
			Title:  title,
			Status: domain.TaskStatusPending,
		}
		assert.NoError(t, task.Validate())

		over := strings.Repeat("é", domain.MaxTaskTitleLength+1)
		req = UpdateTaskRequest{Title: &over}
		assert.Contains(t, validateStruct(req), "title")
	})

	t.Run("status membership message", func(t *testing.T) {
		t.Parallel()

		bad := "archived"
		req := CreateTaskRequest{Title: "T", Status: &bad}
		fieldErrors := validateStruct(req)
		assert.Equal(t,
			[]string{"The status must be one of: pending, in_progress, done."},
			fieldErrors["status"])
	})
}
