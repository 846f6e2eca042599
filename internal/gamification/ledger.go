// Package gamification owns every mutation of a user's points, counters and
// streak. Task code reports events here and never touches the aggregate itself.
package gamification

import (
	"fmt"
	"time"

	taskdomain "ankiplan-backend/internal/task/domain"
)

// Penalty is the flat point cost of skipping a task.
const Penalty = 5

// ProofBonus is the flat extra for completing with an attached proof.
const ProofBonus = 2

// StatsStore is the slice of the user repository the ledger needs.
type StatsStore interface {
	IncrementPoints(userID string, delta int, completed bool) error
	StreakState(userID string) (int, *time.Time, error)
	SetStreak(userID string, streak int, lastActive time.Time) error
}

// Ledger applies completion and skip events to the user aggregate.
type Ledger struct {
	users StatsStore
}

func NewLedger(users StatsStore) *Ledger {
	return &Ledger{users: users}
}

// Award credits a completed task: weekly counts double, monthly quadruple, and
// an attached proof adds a flat bonus. Returns the delta actually applied.
func (l *Ledger) Award(userID string, baseValue int, category taskdomain.Category, hasProof bool) (int, error) {
	points := baseValue
	switch category {
	case taskdomain.CategoryWeekly:
		points *= 2
	case taskdomain.CategoryMonthly:
		points *= 4
	}
	if hasProof {
		points += ProofBonus
	}

	if err := l.users.IncrementPoints(userID, points, true); err != nil {
		return 0, fmt.Errorf("award points: %w", err)
	}
	return points, nil
}

// Penalize debits a skipped task. total_points has no floor and may go negative.
func (l *Ledger) Penalize(userID string) (int, error) {
	if err := l.users.IncrementPoints(userID, -Penalty, false); err != nil {
		return 0, fmt.Errorf("penalize: %w", err)
	}
	return -Penalty, nil
}

// TouchStreak advances the daily streak for a completion event. Consecutive
// days increment, a repeat on the same day is a no-op, any gap restarts at 1.
// last_active_date is stamped to today on every call. Skips never reach here.
func (l *Ledger) TouchStreak(userID string, today time.Time) (int, error) {
	current, lastActive, err := l.users.StreakState(userID)
	if err != nil {
		return 0, fmt.Errorf("read streak: %w", err)
	}

	todayDate := truncateToDay(today)
	streak := 1
	if lastActive != nil {
		switch truncateToDay(*lastActive) {
		case todayDate.AddDate(0, 0, -1):
			streak = current + 1
		case todayDate:
			streak = current
		}
	}

	if err := l.users.SetStreak(userID, streak, todayDate); err != nil {
		return 0, fmt.Errorf("store streak: %w", err)
	}
	return streak, nil
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
