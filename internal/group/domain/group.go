package domain

import "time"

// Group is a set of users competing on one leaderboard.
type Group struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	AdminID     string    `json:"admin_id" gorm:"index;not null"`
	PoolAmount  int       `json:"pool_amount" gorm:"default:0"`
	MonthlyGoal string    `json:"monthly_goal,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GroupMember links a user into a group.
type GroupMember struct {
	GroupID  string    `json:"group_id" gorm:"primaryKey"`
	UserID   string    `json:"user_id" gorm:"primaryKey;index"`
	JoinedAt time.Time `json:"joined_at"`
}

// LeaderboardEntry is one ranked row of a leaderboard.
type LeaderboardEntry struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	TotalPoints int    `json:"total_points"`
}
