package domain

import "time"

// Category is the recurrence cadence of a task. It drives both the reset
// schedule and the point multiplier on completion.
type Category string

const (
	CategoryDaily   Category = "daily"
	CategoryWeekly  Category = "weekly"
	CategoryWeekend Category = "weekend"
	CategoryMonthly Category = "monthly"
)

// Categories lists every valid category, in sweep order.
var Categories = []Category{CategoryDaily, CategoryWeekly, CategoryWeekend, CategoryMonthly}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryDaily, CategoryWeekly, CategoryWeekend, CategoryMonthly:
		return true
	}
	return false
}

// TaskStatus represents the current state of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusSkipped    TaskStatus = "skipped"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusSkipped:
		return true
	}
	return false
}

// DefaultTaskValue is the point worth of a task when the user does not set one.
const DefaultTaskValue = 10

// Task represents a recurring item a user works through each cycle.
// next_reset is always derived from the category; it is never set by callers.
type Task struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	UserID      string     `json:"user_id" gorm:"index;not null"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description,omitempty"`
	Category    Category   `json:"category" gorm:"index;not null"`
	Priority    int        `json:"priority" gorm:"index;default:1"` // lower = higher priority
	Value       int        `json:"value" gorm:"default:10"`
	Status      TaskStatus `json:"status" gorm:"index;default:pending"`
	NextReset   *time.Time `json:"next_reset,omitempty"`
	ProofURL    string     `json:"proof_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
