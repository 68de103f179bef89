package api

import (
	"net/url"
	"strconv"

	"github.com/phrazzld/tasklist-api/internal/domain"
	"github.com/phrazzld/tasklist-api/internal/store"
)

// ParseTaskQuery normalizes the task list query parameters into a
// store.TaskQuery. Unknown or malformed values are silently ignored rather
// than rejected:
//
//   - status outside the fixed status set applies no filter
//   - sort_by outside the sortable columns falls back to created_at
//   - sort_order other than "asc" sorts descending
//   - per_page defaults to 15 and is clamped to [1, 100]
//   - page defaults to 1 and has a minimum of 1
//
// Note the deliberate asymmetry with create/update: an invalid status there
// is a validation error, while as a filter it is simply dropped.
func ParseTaskQuery(values url.Values) store.TaskQuery {
	query := store.TaskQuery{
		SortBy:  store.TaskSortCreatedAt,
		Page:    1,
		PerPage: store.DefaultTaskPageSize,
	}

	if status := domain.TaskStatus(values.Get("status")); status.IsValid() {
		query.Status = status
	}

	query.Search = values.Get("search")

	switch field := store.TaskSortField(values.Get("sort_by")); field {
	case store.TaskSortTitle, store.TaskSortStatus, store.TaskSortCreatedAt, store.TaskSortUpdatedAt:
		query.SortBy = field
	}

	query.SortAsc = values.Get("sort_order") == "asc"

	if raw := values.Get("per_page"); raw != "" {
		if perPage, err := strconv.Atoi(raw); err == nil {
			query.PerPage = perPage
		}
	}
	if query.PerPage > store.MaxTaskPageSize {
		query.PerPage = store.MaxTaskPageSize
	}
	if query.PerPage < 1 {
		query.PerPage = 1
	}

	if raw := values.Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			query.Page = page
		}
	}

	return query
}
