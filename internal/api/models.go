package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasklist-api/internal/domain"
	"github.com/phrazzld/tasklist-api/internal/store"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,max=255"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// CreateTaskRequest defines the payload for task creation. Description and
// Status are pointers so an absent key can be told apart from an explicit
// empty value.
type CreateTaskRequest struct {
	Title       string  `json:"title"       validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Status      *string `json:"status"      validate:"omitempty,task_status"`
}

// UpdateTaskRequest defines the payload for partial task updates. Every
// field is a pointer: only keys present in the request change the task.
// A present title must be non-empty; a present description may be empty.
type UpdateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Status      *string `json:"status"      validate:"omitempty,task_status"`
}

// UserResponse is the client-facing view of a user. The password hash never
// leaves the domain layer.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthData is the data payload for successful register/login responses.
type AuthData struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	ExpiresIn int          `json:"expires_in"` // seconds until the token expires
}

// UserData wraps a user for single-user responses.
type UserData struct {
	User UserResponse `json:"user"`
}

// TaskData wraps a task for single-task responses.
type TaskData struct {
	Task *domain.Task `json:"task"`
}

// Pagination is the page metadata returned alongside task lists.
// From and To are null when the page is empty.
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	LastPage    int  `json:"last_page"`
	PerPage     int  `json:"per_page"`
	Total       int  `json:"total"`
	From        *int `json:"from"`
	To          *int `json:"to"`
}

// TaskListData is the data payload for the task list endpoint.
type TaskListData struct {
	Tasks      []*domain.Task `json:"tasks"`
	Pagination Pagination     `json:"pagination"`
}

// StatsData wraps per-status counts for the stats endpoint.
type StatsData struct {
	Stats *store.TaskStats `json:"stats"`
}

// userToResponse converts a domain user into its client-facing view.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// taskPageToData converts a store page into the list response payload.
func taskPageToData(page *store.TaskPage) TaskListData {
	return TaskListData{
		Tasks: page.Tasks,
		Pagination: Pagination{
			CurrentPage: page.Page,
			LastPage:    page.LastPage,
			PerPage:     page.PerPage,
			Total:       page.Total,
			From:        page.From,
			To:          page.To,
		},
	}
}
