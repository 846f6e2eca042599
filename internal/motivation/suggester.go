package motivation

import (
	"fmt"
	"time"

	authdomain "ankiplan-backend/internal/auth/domain"
	taskdomain "ankiplan-backend/internal/task/domain"
)

// Suggestion is a ready-to-create task proposal.
type Suggestion struct {
	Suggestion string              `json:"suggestion"`
	Category   taskdomain.Category `json:"category"`
	Priority   int                 `json:"priority"`
	Value      int                 `json:"value"`
}

// Suggest proposes the next task to add based on the user's numbers. Each
// branch rotates through its pool on one of the stats, so the text varies as
// the user progresses without needing any stored state.
func Suggest(user *authdomain.User, now time.Time) Suggestion {
	totalTasks := user.CompletedTasks + user.FailedTasks

	ratio := 0.0
	if totalTasks > 0 {
		ratio = float64(user.CompletedTasks) / float64(totalTasks)
	}

	var text string
	switch {
	case ratio < 0.4 && totalTasks > 5:
		pool := []string{
			"You're missing a few tasks. Let's try a lighter, catch-up task. How about a 10-minute review session?",
			"Time for a quick win! Try a 5-minute task like 'Organize your workspace' to build momentum.",
			"Let's reset with something manageable. How about 'Review and update one goal'?",
		}
		text = pool[totalTasks%len(pool)]
	case onStreak(user, now) && user.CurrentStreak >= 3:
		pool := []string{
			"You're on a roll! How about a bonus task? Maybe 'Plan tomorrow's goals' to keep the streak alive?",
			fmt.Sprintf("Amazing %d-day streak! Let's add a momentum task: 'Reflect on your progress'.", user.CurrentStreak),
			"Streak champion! Try 'Set up tomorrow's priority tasks' to maintain your winning habit.",
		}
		text = pool[user.CurrentStreak%len(pool)]
	case user.TotalPoints >= 500:
		pool := []string{
			"You're a productivity powerhouse! How about a challenging task? Maybe 'Plan your next big project'?",
			"With your track record, try something ambitious: 'Break down a major goal into actionable steps'.",
			"Level up! Consider: 'Review and optimize your task management system'.",
		}
		text = pool[(user.TotalPoints/100)%len(pool)]
	case ratio >= 0.7:
		pool := []string{
			"You're doing great! How about a task to balance your routine? Maybe '15-minute walk' for mental clarity?",
			"Keep the balance! Try '10-minute meditation' or 'Read one chapter' for personal growth.",
			"Well-rounded approach! Consider 'Review your goals' or 'Plan your week ahead'.",
		}
		text = pool[user.CompletedTasks%len(pool)]
	case totalTasks == 0:
		text = "Welcome! Start with something simple: 'Set up your workspace' or 'Create your first daily task'."
	default:
		pool := []string{
			"You're making progress! How about 'Review your completed tasks' to celebrate wins?",
			"Keep building momentum: Try 'Plan tomorrow's top 3 priorities'.",
			"Balance is key: Consider 'Take a short break and reflect' or 'Tackle a quick 5-minute task'.",
		}
		text = pool[user.CompletedTasks%len(pool)]
	}

	return Suggestion{
		Suggestion: text,
		Category:   taskdomain.CategoryDaily,
		Priority:   5,
		Value:      taskdomain.DefaultTaskValue,
	}
}

// onStreak reports whether the streak is still alive at now: the user was
// active yesterday, or already today with a positive streak.
func onStreak(user *authdomain.User, now time.Time) bool {
	if user.LastActiveDate == nil {
		return false
	}
	today := truncateToDay(now)
	switch truncateToDay(*user.LastActiveDate) {
	case today.AddDate(0, 0, -1):
		return true
	case today:
		return user.CurrentStreak > 0
	}
	return false
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
