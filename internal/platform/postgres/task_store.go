package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/tasklist-api/internal/domain"
	"github.com/phrazzld/tasklist-api/internal/platform/logger"
	"github.com/phrazzld/tasklist-api/internal/store"
)

// taskColumns is the column list shared by every task SELECT.
const taskColumns = "id, user_id, title, description, status, created_at, updated_at"

// taskSortColumns whitelists the ORDER BY columns the list operation may
// use. Values are trusted SQL fragments; anything not in this map falls
// back to created_at.
var taskSortColumns = map[store.TaskSortField]string{
	store.TaskSortTitle:     "title",
	store.TaskSortStatus:    "status",
	store.TaskSortCreatedAt: "created_at",
	store.TaskSortUpdatedAt: "updated_at",
}

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create
// Returns validation errors from the domain Task if data is invalid.
// Returns store.ErrInvalidEntity if the owner does not exist.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	query := `
		INSERT INTO tasks (id, user_id, title, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		task.ID,
		task.UserID,
		task.Title,
		task.Description,
		task.Status,
		task.CreatedAt,
		task.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during task creation",
				slog.String("task_id", task.ID.String()),
				slog.String("user_id", task.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, task.UserID)
		}

		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()),
			slog.String("user_id", task.UserID.String()))
		return err
	}

	log.Info("task created successfully",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", task.UserID.String()),
		slog.String("status", string(task.Status)))
	return nil
}

// GetForUser implements store.TaskStore.GetForUser
// The lookup is owner-scoped: a task belonging to another user yields
// store.ErrTaskNotFound, the same as a task that does not exist.
func (s *PostgresTaskStore) GetForUser(
	ctx context.Context,
	userID, taskID uuid.UUID,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, taskID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found",
				slog.String("task_id", taskID.String()),
				slog.String("user_id", userID.String()))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()))
		return nil, err
	}

	return task, nil
}

// Update implements store.TaskStore.Update
// The update is owner-scoped through the task's own UserID; zero rows
// affected means the task does not exist in that user's partition.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	task.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE tasks
		SET title = $1, description = $2, status = $3, updated_at = $4
		WHERE id = $5 AND user_id = $6
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.Status,
		task.UpdatedAt,
		task.ID,
		task.UserID,
	)

	if err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("task not found for update",
			slog.String("task_id", task.ID.String()),
			slog.String("user_id", task.UserID.String()))
		return store.ErrTaskNotFound
	}

	log.Info("task updated successfully",
		slog.String("task_id", task.ID.String()),
		slog.String("status", string(task.Status)))
	return nil
}

// DeleteForUser implements store.TaskStore.DeleteForUser
func (s *PostgresTaskStore) DeleteForUser(ctx context.Context, userID, taskID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	result, err := s.db.ExecContext(ctx, query, taskID, userID)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("task not found for delete",
			slog.String("task_id", taskID.String()),
			slog.String("user_id", userID.String()))
		return store.ErrTaskNotFound
	}

	log.Info("task deleted successfully",
		slog.String("task_id", taskID.String()),
		slog.String("user_id", userID.String()))
	return nil
}

// List implements store.TaskStore.List
// It runs a COUNT over the filtered set followed by a LIMIT/OFFSET page
// query, both always scoped to the owner.
func (s *PostgresTaskStore) List(
	ctx context.Context,
	userID uuid.UUID,
	query store.TaskQuery,
) (*store.TaskPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query = normalizeTaskQuery(query)

	whereClause, args := buildTaskFilter(userID, query)

	var total int
	countSQL := "SELECT COUNT(*) FROM tasks WHERE " + whereClause
	if err := s.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		log.Error("failed to count tasks",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}

	offset := (query.Page - 1) * query.PerPage
	listSQL := fmt.Sprintf(
		"SELECT %s FROM tasks WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		taskColumns,
		whereClause,
		taskOrderClause(query),
		len(args)+1,
		len(args)+2,
	)
	args = append(args, query.PerPage, offset)

	rows, err := s.db.QueryContext(ctx, listSQL, args...)
	if err != nil {
		log.Error("failed to query tasks",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	tasks := []*domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row",
				slog.String("error", err.Error()))
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	page := newTaskPage(tasks, total, query.Page, query.PerPage)

	log.Debug("listed tasks",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(tasks)),
		slog.Int("total", total),
		slog.Int("page", page.Page))
	return page, nil
}

// CountByStatus implements store.TaskStore.CountByStatus
// A single aggregate query produces all four counts, zero-filled when the
// user has no tasks.
func (s *PostgresTaskStore) CountByStatus(
	ctx context.Context,
	userID uuid.UUID,
) (*store.TaskStats, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3),
			COUNT(*) FILTER (WHERE status = $4)
		FROM tasks
		WHERE user_id = $1
	`

	var stats store.TaskStats
	err := s.db.QueryRowContext(
		ctx,
		query,
		userID,
		domain.TaskStatusPending,
		domain.TaskStatusInProgress,
		domain.TaskStatusDone,
	).Scan(&stats.Total, &stats.Pending, &stats.InProgress, &stats.Done)

	if err != nil {
		log.Error("failed to count tasks by status",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}

	return &stats, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanTask.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask reads one task row in taskColumns order.
func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	var status string

	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&status,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Status = domain.TaskStatus(status)
	return &task, nil
}

// normalizeTaskQuery clamps pagination inputs so the store never runs a
// query with a non-positive page or page size.
func normalizeTaskQuery(q store.TaskQuery) store.TaskQuery {
	if q.PerPage < 1 {
		q.PerPage = store.DefaultTaskPageSize
	}
	if q.PerPage > store.MaxTaskPageSize {
		q.PerPage = store.MaxTaskPageSize
	}
	if q.Page < 1 {
		q.Page = 1
	}
	return q
}

// buildTaskFilter returns the WHERE clause and its positional arguments for
// the given owner and query. The owner predicate is always first and never
// optional.
func buildTaskFilter(userID uuid.UUID, q store.TaskQuery) (string, []any) {
	conditions := []string{"user_id = $1"}
	args := []any{userID}

	if q.Status != "" {
		args = append(args, q.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	if q.Search != "" {
		args = append(args, "%"+escapeLikePattern(q.Search)+"%")
		conditions = append(conditions, fmt.Sprintf("title LIKE $%d", len(args)))
	}

	return strings.Join(conditions, " AND "), args
}

// taskOrderClause returns the ORDER BY fragment for the given query. The
// column comes from the taskSortColumns whitelist only; a trailing id
// tiebreak keeps pagination stable across rows with equal sort keys.
func taskOrderClause(q store.TaskQuery) string {
	column, ok := taskSortColumns[q.SortBy]
	if !ok {
		column = "created_at"
	}

	direction := "DESC"
	if q.SortAsc {
		direction = "ASC"
	}

	return column + " " + direction + ", id " + direction
}

// escapeLikePattern escapes LIKE metacharacters in a user-supplied search
// term so it matches literally.
func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// newTaskPage assembles pagination metadata for one page of results.
// LastPage is always at least 1 so an empty result set still reports a
// valid page range. From/To are nil on an empty page.
func newTaskPage(tasks []*domain.Task, total, page, perPage int) *store.TaskPage {
	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}

	result := &store.TaskPage{
		Tasks:    tasks,
		Total:    total,
		Page:     page,
		PerPage:  perPage,
		LastPage: lastPage,
	}

	if len(tasks) > 0 {
		from := (page-1)*perPage + 1
		to := from + len(tasks) - 1
		result.From = &from
		result.To = &to
	}

	return result
}
