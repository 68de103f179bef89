package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithData(t *testing.T) {
	t.Parallel()

	t.Run("message and data", func(t *testing.T) {
		t.Parallel()

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/tasks", nil)

		RespondWithData(recorder, req, http.StatusCreated, "Task created successfully",
			map[string]string{"key": "value"})

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

		var envelope Envelope
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
		assert.True(t, envelope.Success)
		assert.Equal(t, "Task created successfully", envelope.Message)
		assert.NotNil(t, envelope.Data)
		assert.Nil(t, envelope.Errors)
	})

	t.Run("empty message is omitted from the body", func(t *testing.T) {
		t.Parallel()

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/tasks", nil)

		RespondWithData(recorder, req, http.StatusOK, "", map[string]int{"n": 1})

		var raw map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&raw))
		assert.Contains(t, raw, "success")
		assert.Contains(t, raw, "data")
		assert.NotContains(t, raw, "message")
	})
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/tasks/xyz", nil)

	RespondWithError(recorder, req, http.StatusNotFound, "Task not found")

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var envelope Envelope
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "Task not found", envelope.Message)
	assert.Nil(t, envelope.Data)
}

func TestRespondWithValidationErrors(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/tasks", nil)

	fieldErrors := map[string][]string{
		"title":  {"The title field is required."},
		"status": {"The status must be one of: pending, in_progress, done."},
	}

	RespondWithValidationErrors(recorder, req, fieldErrors)

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	var envelope Envelope
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "Validation failed", envelope.Message)
	assert.Equal(t, fieldErrors, envelope.Errors)
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/tasks", nil)

	internalErr := errors.New("pq: connection to postgres://user:pw@host/db lost")
	RespondWithErrorAndLog(recorder, req, http.StatusInternalServerError,
		"Failed to fetch tasks", internalErr)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	// The raw error must never reach the client.
	body := recorder.Body.String()
	assert.NotContains(t, body, "postgres://")
	assert.NotContains(t, body, "pq:")

	var envelope Envelope
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "Failed to fetch tasks", envelope.Message)
	assert.Empty(t, envelope.Error)
}

func TestTraceID(t *testing.T) {
	t.Parallel()

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()

		ctx := SetTraceID(context.Background())
		traceID := GetTraceID(ctx)
		assert.Len(t, traceID, TraceIDLength*2, "trace ID should be hex encoded")
	})

	t.Run("missing trace ID", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", GetTraceID(context.Background()))
	})

	t.Run("unique per context", func(t *testing.T) {
		t.Parallel()

		first := GetTraceID(SetTraceID(context.Background()))
		second := GetTraceID(SetTraceID(context.Background()))
		assert.NotEqual(t, first, second)
	})
}
