package repository

import (
	"time"

	"ankiplan-backend/internal/task/domain"
)

// TaskFilter narrows FindByUser results. Nil fields match everything.
type TaskFilter struct {
	Status   *domain.TaskStatus
	Category *domain.Category
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create inserts a new task
	Create(task *domain.Task) error

	// FindByID finds a task by ID, scoped to its owner. A task that exists but
	// belongs to someone else is reported as not found.
	FindByID(id, userID string) (*domain.Task, error)

	// FindByUser lists a user's tasks ordered by (priority ASC, created_at ASC)
	FindByUser(userID string, filter TaskFilter) ([]*domain.Task, error)

	// Update persists the full task record and stamps updated_at
	Update(task *domain.Task) error

	// Delete removes a task by ID
	Delete(id string) error

	// TransitionStatus flips a task's status only while its current status is
	// still in from. Returns false when the precondition no longer holds, so
	// concurrent transitions on the same task cannot both win.
	TransitionStatus(id string, from []domain.TaskStatus, to domain.TaskStatus, now time.Time) (bool, error)

	// FindDueForReset returns completed tasks of a category whose next_reset
	// has elapsed
	FindDueForReset(category domain.Category, now time.Time) ([]*domain.Task, error)

	// ResetToPending returns a swept task to pending with a fresh next_reset,
	// clearing its proof reference. Conditional on the task still being
	// completed; returns false otherwise.
	ResetToPending(id string, nextReset, now time.Time) (bool, error)
}

// TaskLogRepository records completion/skip events. Append-only: there is no
// update or delete on purpose.
type TaskLogRepository interface {
	Append(log *domain.TaskLog) error

	// FindByUserSince returns a user's log entries at or after since, oldest first
	FindByUserSince(userID string, since time.Time) ([]*domain.TaskLog, error)
}
