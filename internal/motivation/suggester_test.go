package motivation

import (
	"testing"
	"time"

	authdomain "ankiplan-backend/internal/auth/domain"
	taskdomain "ankiplan-backend/internal/task/domain"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	now := time.Date(2024, 3, 19, 12, 0, 0, 0, time.UTC)
	yesterday := time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		user     authdomain.User
		contains string
	}{
		{
			name:     "low completion ratio gets a catch-up task",
			user:     authdomain.User{Username: "ana", CompletedTasks: 2, FailedTasks: 5},
			contains: "quick win",
		},
		{
			name: "active streak gets a bonus task",
			user: authdomain.User{
				Username:       "ben",
				CurrentStreak:  4,
				CompletedTasks: 10,
				LastActiveDate: &yesterday,
			},
			contains: "4-day streak",
		},
		{
			name:     "stale streak falls through to the points branch",
			user:     authdomain.User{Username: "ben", CurrentStreak: 4, TotalPoints: 600, CompletedTasks: 10},
			contains: "powerhouse",
		},
		{
			name:     "high points get a challenge",
			user:     authdomain.User{Username: "cleo", TotalPoints: 500, CompletedTasks: 3, FailedTasks: 4},
			contains: "Level up",
		},
		{
			name:     "balanced routine",
			user:     authdomain.User{Username: "dee", CompletedTasks: 9, FailedTasks: 1},
			contains: "balance",
		},
		{
			name:     "brand new user gets onboarding",
			user:     authdomain.User{Username: "eve"},
			contains: "Start with something simple",
		},
		{
			name:     "middling user gets the default pool",
			user:     authdomain.User{Username: "fay", CompletedTasks: 3, FailedTasks: 2},
			contains: "celebrate wins",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Suggest(&tt.user, now)
			assert.Contains(t, s.Suggestion, tt.contains)
			assert.Equal(t, taskdomain.CategoryDaily, s.Category)
			assert.Equal(t, 5, s.Priority)
			assert.Equal(t, taskdomain.DefaultTaskValue, s.Value)
		})
	}
}

func TestOnStreak(t *testing.T) {
	now := time.Date(2024, 3, 19, 12, 0, 0, 0, time.UTC)
	yesterday := time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)
	today := time.Date(2024, 3, 19, 8, 0, 0, 0, time.UTC)
	lastWeek := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)

	assert.False(t, onStreak(&authdomain.User{}, now), "no activity yet")
	assert.True(t, onStreak(&authdomain.User{LastActiveDate: &yesterday}, now))
	assert.True(t, onStreak(&authdomain.User{LastActiveDate: &today, CurrentStreak: 2}, now))
	assert.False(t, onStreak(&authdomain.User{LastActiveDate: &today}, now), "active today but streak never started")
	assert.False(t, onStreak(&authdomain.User{LastActiveDate: &lastWeek, CurrentStreak: 5}, now), "gap kills the streak")
}
