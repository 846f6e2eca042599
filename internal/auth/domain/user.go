package domain

import "time"

// User carries identity plus the gamification aggregate. total_points may go
// negative (skip penalties have no floor); the task counters only ever grow.
type User struct {
	ID             string     `json:"id" gorm:"primaryKey"`
	Email          string     `json:"email" gorm:"uniqueIndex;not null"`
	Username       string     `json:"username" gorm:"not null"`
	Password       string     `json:"-"` // Never return password in JSON
	TotalPoints    int        `json:"total_points" gorm:"default:0"`
	CurrentStreak  int        `json:"current_streak" gorm:"default:0"`
	LastActiveDate *time.Time `json:"last_active_date,omitempty"`
	CompletedTasks int        `json:"completed_tasks" gorm:"default:0"`
	FailedTasks    int        `json:"failed_tasks" gorm:"default:0"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type RefreshToken struct {
	Token     string    `json:"token" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index"`
	ExpiresAt time.Time `json:"expires_at"`
}
