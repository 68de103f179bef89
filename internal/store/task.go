package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/tasklist-api/internal/domain"
)

// TaskSortField names a task column usable for ordering list results.
type TaskSortField string

// Columns the list operation may sort by. Anything else is rejected before
// it reaches the store.
const (
	TaskSortTitle     TaskSortField = "title"
	TaskSortStatus    TaskSortField = "status"
	TaskSortCreatedAt TaskSortField = "created_at"
	TaskSortUpdatedAt TaskSortField = "updated_at"
)

// Pagination bounds for task listing.
const (
	DefaultTaskPageSize = 15
	MaxTaskPageSize     = 100
)

// TaskQuery describes a filtered, sorted, paginated view over one user's
// tasks. The zero value lists the first page of all tasks, newest first.
// Callers are expected to normalize inputs (see api.ParseTaskQuery); the
// store additionally clamps page and page size defensively.
type TaskQuery struct {
	// Status filters to tasks with this exact status. Empty means no filter.
	Status domain.TaskStatus

	// Search filters to tasks whose title contains this substring.
	// Empty means no search.
	Search string

	// SortBy selects the ordering column. Zero value sorts by created_at.
	SortBy TaskSortField

	// SortAsc orders ascending when true; the default is descending.
	SortAsc bool

	// Page is the 1-based page number.
	Page int

	// PerPage is the page size, clamped to [1, MaxTaskPageSize].
	PerPage int
}

// TaskPage is one page of a user's tasks plus pagination metadata.
// From and To are the 1-based indexes of the first and last item on the
// page within the full result set; both are nil when the page is empty.
type TaskPage struct {
	Tasks    []*domain.Task
	Total    int
	Page     int
	PerPage  int
	LastPage int
	From     *int
	To       *int
}

// TaskStats holds per-status task counts for a single user. All fields are
// zero-filled when the user has no tasks.
type TaskStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Done       int `json:"done"`
}

// TaskStore defines the interface for task data persistence. Every read,
// update and delete is scoped to an owner: a task belonging to another user
// is indistinguishable from a task that does not exist.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetForUser retrieves a task by ID within the given user's partition.
	// Returns ErrTaskNotFound if the task does not exist or is owned by a
	// different user.
	GetForUser(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)

	// Update persists changes to an existing task, scoped to its owner.
	// Returns ErrTaskNotFound if the task does not exist or is owned by a
	// different user.
	Update(ctx context.Context, task *domain.Task) error

	// DeleteForUser permanently removes a task within the given user's
	// partition. Returns ErrTaskNotFound if the task does not exist or is
	// owned by a different user.
	DeleteForUser(ctx context.Context, userID, taskID uuid.UUID) error

	// List returns one page of the given user's tasks matching the query.
	List(ctx context.Context, userID uuid.UUID, query TaskQuery) (*TaskPage, error)

	// CountByStatus returns per-status task counts for the given user.
	CountByStatus(ctx context.Context, userID uuid.UUID) (*TaskStats, error)
}
