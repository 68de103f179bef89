// Package api provides HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/tasklist-api/internal/api/shared"
	"github.com/phrazzld/tasklist-api/internal/domain"
	"github.com/phrazzld/tasklist-api/internal/platform/logger"
	"github.com/phrazzld/tasklist-api/internal/redact"
	"github.com/phrazzld/tasklist-api/internal/store"
)

// TaskHandler handles task-related HTTP requests. Every operation is scoped
// to the authenticated user taken from the request context.
type TaskHandler struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskStore store.TaskStore, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_handler")),
	}
}

// List handles GET /api/tasks requests.
// Query parameters select the filter, sort and page; unknown values are
// silently ignored (see ParseTaskQuery).
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	query := ParseTaskQuery(r.URL.Query())

	page, err := h.taskStore.List(r.Context(), userID, query)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to fetch tasks", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "", taskPageToData(page))
}

// Create handles POST /api/tasks requests.
// Validation runs before any write; a failing request creates nothing.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if fieldErrors := validateStruct(req); fieldErrors != nil {
		shared.RespondWithValidationErrors(w, r, fieldErrors)
		return
	}

	var description string
	if req.Description != nil {
		description = *req.Description
	}

	// Status defaults to pending inside NewTask when absent.
	var status domain.TaskStatus
	if req.Status != nil {
		status = domain.TaskStatus(*req.Status)
	}

	task, err := domain.NewTask(userID, req.Title, description, status)
	if err != nil {
		log.Warn("task construction failed", slog.String("error", err.Error()))
		shared.RespondWithValidationErrors(w, r, map[string][]string{
			"task": {err.Error()},
		})
		return
	}

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create task", err)
		return
	}

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", userID.String()))
	shared.RespondWithData(w, r, http.StatusCreated, "Task created successfully",
		TaskData{Task: task})
}

// Get handles GET /api/tasks/{id} requests.
// A task owned by another user responds exactly like a missing one.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	taskID, err := getPathUUID(r, "id")
	if err != nil {
		// A malformed ID cannot name an existing task; keep the response
		// indistinguishable from a miss.
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	task, err := h.taskStore.GetForUser(r.Context(), userID, taskID)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, statusCode, GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "", TaskData{Task: task})
}

// Update handles PUT /api/tasks/{id} requests.
// Updates are partial: only keys present in the request body change the
// task. Validation runs before the lookup so a bad payload never touches
// the store.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if fieldErrors := validateStruct(req); fieldErrors != nil {
		shared.RespondWithValidationErrors(w, r, fieldErrors)
		return
	}

	taskID, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	task, err := h.taskStore.GetForUser(r.Context(), userID, taskID)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, statusCode, GetSafeErrorMessage(err), err)
		return
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = domain.TaskStatus(*req.Status)
	}

	if err := h.taskStore.Update(r.Context(), task); err != nil {
		statusCode := MapErrorToStatusCode(err)
		message := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			message = "Failed to update task"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, message, err)
		return
	}

	log.Info("task updated",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", userID.String()))
	shared.RespondWithData(w, r, http.StatusOK, "Task updated successfully",
		TaskData{Task: task})
}

// Delete handles DELETE /api/tasks/{id} requests.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	taskID, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	if err := h.taskStore.DeleteForUser(r.Context(), userID, taskID); err != nil {
		statusCode := MapErrorToStatusCode(err)
		message := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			message = "Failed to delete task"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, message, err)
		return
	}

	log.Info("task deleted",
		slog.String("task_id", taskID.String()),
		slog.String("user_id", userID.String()))
	shared.RespondWithData(w, r, http.StatusOK, "Task deleted successfully", nil)
}

// Stats handles GET /api/tasks/stats requests.
// All four counts are always present, zero-filled for users with no tasks.
func (h *TaskHandler) Stats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	stats, err := h.taskStore.CountByStatus(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to fetch task statistics", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "", StatsData{Stats: stats})
}
