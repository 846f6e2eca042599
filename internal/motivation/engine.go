// Package motivation turns a user's precomputed stats into an encouraging
// message. It is a pure function of the aggregate; no state, no model calls.
package motivation

import (
	"fmt"

	authdomain "ankiplan-backend/internal/auth/domain"
)

// Message picks the most specific encouragement that fits the user's numbers.
// Branch order matters: streaks outrank struggles, struggles outrank totals.
func Message(user *authdomain.User) string {
	name := user.Username
	totalTasks := user.CompletedTasks + user.FailedTasks

	ratio := 0.0
	if totalTasks > 0 {
		ratio = float64(user.CompletedTasks) / float64(totalTasks)
	}

	switch {
	case user.CurrentStreak >= 7:
		return fmt.Sprintf("Incredible! %d days in a row! You're building an unstoppable habit, %s!", user.CurrentStreak, name)
	case user.CurrentStreak >= 5:
		return fmt.Sprintf("Amazing streak of %d days! You're unstoppable, %s!", user.CurrentStreak, name)
	case user.CurrentStreak >= 3:
		return fmt.Sprintf("Great momentum, %s! %d days strong. Keep it going!", name, user.CurrentStreak)
	case user.FailedTasks > user.CompletedTasks && totalTasks > 5:
		return fmt.Sprintf("You've hit a rough patch, %s. Remember, discipline is built in the comeback. You can do this!", name)
	case ratio < 0.4 && totalTasks > 5:
		return fmt.Sprintf("Every comeback starts with a single step, %s. Let's focus on completing one task today. You've got this!", name)
	case user.TotalPoints == 0 && user.CompletedTasks == 0:
		return fmt.Sprintf("Every great journey starts with a single step. Add one new task today, %s, and let's get started!", name)
	case user.TotalPoints >= 1000:
		return fmt.Sprintf("Champion! You've earned %d points, %s! You're a productivity powerhouse!", user.TotalPoints, name)
	case user.TotalPoints >= 500:
		return fmt.Sprintf("Exceptional work, %s! You've crossed %d points. Keep pushing forward!", name, user.TotalPoints)
	case user.CompletedTasks > 0:
		return fmt.Sprintf("Great work, %s! You've completed %d tasks and earned %d points. Keep that momentum going!", name, user.CompletedTasks, user.TotalPoints)
	default:
		return fmt.Sprintf("Ready to make today count, %s? Let's add some tasks and build your productivity streak!", name)
	}
}
