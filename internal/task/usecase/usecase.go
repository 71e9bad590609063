package usecase

import (
	"errors"
	"strings"

	"taskflow-backend/internal/task/domain"
)

// ErrTaskNotFound covers both a nonexistent task and a task owned by another
// user; callers must not be able to tell the two apart.
var ErrTaskNotFound = errors.New("task not found")

// ValidationErrors collects field-level validation messages.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}

// CreateTaskInput is the request body for creating a task.
type CreateTaskInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}

// UpdateTaskInput is a partial patch: only non-nil fields are applied.
type UpdateTaskInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// ListTasksInput carries the parsed listing query.
type ListTasksInput struct {
	Page   int
	Limit  int
	Status string
	Search string
}

// Pagination describes one page of a task listing.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

// TaskUsecase defines the interface for task business logic. Every operation
// is scoped to the requesting owner.
type TaskUsecase interface {
	// List returns one page of the owner's tasks, newest first
	List(ownerID string, in ListTasksInput) ([]domain.Task, *Pagination, error)

	// GetByID retrieves a single task
	GetByID(ownerID, taskID string) (*domain.Task, error)

	// Create validates and persists a new task
	Create(ownerID string, in CreateTaskInput) (*domain.Task, error)

	// Update applies a partial patch to an existing task
	Update(ownerID, taskID string, in UpdateTaskInput) (*domain.Task, error)

	// Delete removes a task
	Delete(ownerID, taskID string) error

	// ToggleStatus flips COMPLETED back to PENDING and everything else to
	// COMPLETED
	ToggleStatus(ownerID, taskID string) (*domain.Task, error)
}
