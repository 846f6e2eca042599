package domain

import "time"

// TaskLog is an append-only record of a completion or skip event. Analytics
// reads it; nothing in this service ever mutates or deletes a row.
type TaskLog struct {
	ID        string     `json:"id" gorm:"primaryKey"`
	UserID    string     `json:"user_id" gorm:"index;not null"`
	TaskID    string     `json:"task_id" gorm:"not null"`
	Status    TaskStatus `json:"status" gorm:"not null"` // completed or skipped
	Category  Category   `json:"category" gorm:"not null"`
	Timestamp time.Time  `json:"timestamp" gorm:"index"`
}
