package domain

import "time"

// Status represents the current state of a task
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// Valid reports whether s is one of the three enumerated values.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task represents a to-do item owned by exactly one user
type Task struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"-" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description *string   `json:"description"`
	Status      Status    `json:"status" gorm:"default:PENDING"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Toggled returns the status after a toggle: COMPLETED goes back to PENDING,
// anything else (including IN_PROGRESS) goes to COMPLETED.
func (t *Task) Toggled() Status {
	if t.Status == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}
