package usecase

import (
	"ankiplan-backend/internal/task/domain"
)

// TaskUsecase is the task lifecycle state machine:
//
//	pending -> in_progress -> completed
//	pending -> skipped
//	completed -> pending   (reset sweep only)
//	any -> deleted
type TaskUsecase interface {
	// CreateTask inserts a pending task with its first next_reset computed
	CreateTask(userID string, req CreateTaskRequest) (*domain.Task, error)

	// GetTaskByID retrieves a task scoped to its owner
	GetTaskByID(userID, taskID string) (*domain.Task, error)

	// GetUserTasks lists tasks ordered by (priority ASC, created_at ASC),
	// optionally filtered by status and category
	GetUserTasks(userID string, status, category *string) ([]*domain.Task, error)

	// GetPriorityQueue lists only pending and in-progress tasks in priority order
	GetPriorityQueue(userID string) ([]*domain.Task, error)

	// UpdateTask changes title/description/priority/value/category. A category
	// change recomputes next_reset from now, restarting the cadence clock.
	UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error)

	// CompleteTask transitions to completed, logs the event and credits the
	// ledger. Ledger/log failures do not roll the transition back; they are
	// reported in the result.
	CompleteTask(userID, taskID string) (*CompletionResult, error)

	// SkipTask transitions to skipped, logs the event and applies the penalty
	SkipTask(userID, taskID string) (*CompletionResult, error)

	// SetStatus moves a task between pending and in_progress. Completed and
	// skipped are only reachable through CompleteTask/SkipTask.
	SetStatus(userID, taskID string, status domain.TaskStatus) (*domain.Task, error)

	// DeleteTask removes the task and, best-effort, its proof artifact
	DeleteTask(userID, taskID string) error

	// AttachProof stores an uploaded artifact reference on the task. Points are
	// only affected by a later CompleteTask observing the reference.
	AttachProof(userID, taskID string, ref string) (*domain.Task, error)
}

// CreateTaskRequest carries the user-settable fields of a new task.
type CreateTaskRequest struct {
	Title       string
	Description string
	Category    string
	Priority    int
	Value       int
}

// TaskUpdateRequest represents the fields that can be updated
type TaskUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
	Value       *int    `json:"value,omitempty"`
}

// CompletionResult reports a complete/skip transition. The task state is
// authoritative; gamification is best-effort telemetry, so GamificationErr may
// be set while Task reflects a committed transition.
type CompletionResult struct {
	Task            *domain.Task `json:"task"`
	PointsDelta     int          `json:"points_delta"`
	Streak          int          `json:"streak,omitempty"`
	GamificationErr string       `json:"gamification_error,omitempty"`
}
