package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/tasklist-api/internal/domain"
	"github.com/phrazzld/tasklist-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, task *domain.Task) error
	GetForUserFn    func(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	UpdateFn        func(ctx context.Context, task *domain.Task) error
	DeleteForUserFn func(ctx context.Context, userID, taskID uuid.UUID) error
	ListFn          func(ctx context.Context, userID uuid.UUID, query store.TaskQuery) (*store.TaskPage, error)
	CountByStatusFn func(ctx context.Context, userID uuid.UUID) (*store.TaskStats, error)

	// Data for default implementation
	Tasks       map[uuid.UUID]*domain.Task
	CreateError error
}

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks: make(map[uuid.UUID]*domain.Task),
	}
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Tasks[task.ID] = task
	return nil
}

// GetForUser implements the TaskStore interface
func (m *MockTaskStore) GetForUser(
	ctx context.Context,
	userID, taskID uuid.UUID,
) (*domain.Task, error) {
	if m.GetForUserFn != nil {
		return m.GetForUserFn(ctx, userID, taskID)
	}

	task, exists := m.Tasks[taskID]
	if !exists || task.UserID != userID {
		return nil, store.ErrTaskNotFound
	}

	return task, nil
}

// Update implements the TaskStore interface
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}

	existing, exists := m.Tasks[task.ID]
	if !exists || existing.UserID != task.UserID {
		return store.ErrTaskNotFound
	}

	m.Tasks[task.ID] = task
	return nil
}

// DeleteForUser implements the TaskStore interface
func (m *MockTaskStore) DeleteForUser(ctx context.Context, userID, taskID uuid.UUID) error {
	if m.DeleteForUserFn != nil {
		return m.DeleteForUserFn(ctx, userID, taskID)
	}

	task, exists := m.Tasks[taskID]
	if !exists || task.UserID != userID {
		return store.ErrTaskNotFound
	}

	delete(m.Tasks, taskID)
	return nil
}

// List implements the TaskStore interface. The default implementation
// returns all of the user's tasks as a single page, ignoring filters.
func (m *MockTaskStore) List(
	ctx context.Context,
	userID uuid.UUID,
	query store.TaskQuery,
) (*store.TaskPage, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, userID, query)
	}

	var tasks []*domain.Task
	for _, task := range m.Tasks {
		if task.UserID == userID {
			tasks = append(tasks, task)
		}
	}

	page := &store.TaskPage{
		Tasks:    tasks,
		Total:    len(tasks),
		Page:     1,
		PerPage:  store.DefaultTaskPageSize,
		LastPage: 1,
	}
	if len(tasks) > 0 {
		from := 1
		to := len(tasks)
		page.From = &from
		page.To = &to
	}
	return page, nil
}

// CountByStatus implements the TaskStore interface
func (m *MockTaskStore) CountByStatus(
	ctx context.Context,
	userID uuid.UUID,
) (*store.TaskStats, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx, userID)
	}

	stats := &store.TaskStats{}
	for _, task := range m.Tasks {
		if task.UserID != userID {
			continue
		}
		stats.Total++
		switch task.Status {
		case domain.TaskStatusPending:
			stats.Pending++
		case domain.TaskStatusInProgress:
			stats.InProgress++
		case domain.TaskStatusDone:
			stats.Done++
		}
	}
	return stats, nil
}
