package repository

import "taskflow-backend/internal/task/domain"

// Filter narrows a task listing. A nil Status means no status filter; an empty
// Search means no title filter.
type Filter struct {
	Status *domain.Status
	Search string
}

// TaskRepository defines the interface for task data access. Every query is
// scoped by the owning user's ID so cross-user access is indistinguishable
// from nonexistence.
type TaskRepository interface {
	// Create inserts a new task, assigning its ID and timestamps
	Create(task *domain.Task) error

	// FindByOwner returns one page of the owner's tasks matching the filter,
	// newest first, along with the total count under the same filter
	FindByOwner(ownerID string, f Filter, limit, offset int) ([]domain.Task, int64, error)

	// FindByIDAndOwner finds a task by ID and owner; returns (nil, nil) when
	// the task does not exist or belongs to someone else
	FindByIDAndOwner(ownerID, id string) (*domain.Task, error)

	// Update applies the given column values in a single conditional statement
	// and reports the number of rows affected (0 means missing or not owned)
	Update(ownerID, id string, fields map[string]interface{}) (int64, error)

	// Delete removes the task in a single conditional statement and reports
	// the number of rows affected
	Delete(ownerID, id string) (int64, error)
}
