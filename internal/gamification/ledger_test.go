package gamification

import (
	"testing"
	"time"

	taskdomain "ankiplan-backend/internal/task/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStatsStore keeps one user's aggregate in memory.
type fakeStatsStore struct {
	totalPoints    int
	completedTasks int
	failedTasks    int
	currentStreak  int
	lastActive     *time.Time
}

func (f *fakeStatsStore) IncrementPoints(userID string, delta int, completed bool) error {
	f.totalPoints += delta
	if completed {
		f.completedTasks++
	} else {
		f.failedTasks++
	}
	return nil
}

func (f *fakeStatsStore) StreakState(userID string) (int, *time.Time, error) {
	return f.currentStreak, f.lastActive, nil
}

func (f *fakeStatsStore) SetStreak(userID string, streak int, lastActive time.Time) error {
	f.currentStreak = streak
	f.lastActive = &lastActive
	return nil
}

func TestAward(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		category taskdomain.Category
		hasProof bool
		want     int
	}{
		{"daily base value", 10, taskdomain.CategoryDaily, false, 10},
		{"weekend counts like daily", 10, taskdomain.CategoryWeekend, false, 10},
		{"weekly doubles", 10, taskdomain.CategoryWeekly, false, 20},
		{"weekly with proof", 10, taskdomain.CategoryWeekly, true, 22},
		{"monthly quadruples", 10, taskdomain.CategoryMonthly, false, 40},
		{"proof bonus is flat", 1, taskdomain.CategoryDaily, true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStatsStore{}
			ledger := NewLedger(store)

			delta, err := ledger.Award("u1", tt.value, tt.category, tt.hasProof)
			require.NoError(t, err)
			assert.Equal(t, tt.want, delta)
			assert.Equal(t, tt.want, store.totalPoints)
			assert.Equal(t, 1, store.completedTasks)
			assert.Equal(t, 0, store.failedTasks)
		})
	}
}

func TestPenalize(t *testing.T) {
	store := &fakeStatsStore{totalPoints: 3}
	ledger := NewLedger(store)

	delta, err := ledger.Penalize("u1")
	require.NoError(t, err)
	assert.Equal(t, -5, delta)
	assert.Equal(t, -2, store.totalPoints, "points may go negative")
	assert.Equal(t, 1, store.failedTasks)
	assert.Equal(t, 0, store.completedTasks)
}

func TestTouchStreak(t *testing.T) {
	today := time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	t.Run("first completion starts at one", func(t *testing.T) {
		store := &fakeStatsStore{}
		streak, err := NewLedger(store).TouchStreak("u1", today)
		require.NoError(t, err)
		assert.Equal(t, 1, streak)
	})

	t.Run("consecutive day increments", func(t *testing.T) {
		last := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, time.UTC)
		store := &fakeStatsStore{currentStreak: 4, lastActive: &last}
		streak, err := NewLedger(store).TouchStreak("u1", today)
		require.NoError(t, err)
		assert.Equal(t, 5, streak)
	})

	t.Run("same day repeat is idempotent", func(t *testing.T) {
		store := &fakeStatsStore{currentStreak: 4}
		ledger := NewLedger(store)
		first, err := ledger.TouchStreak("u1", today)
		require.NoError(t, err)
		second, err := ledger.TouchStreak("u1", today)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("gap resets to one", func(t *testing.T) {
		last := today.AddDate(0, 0, -5)
		store := &fakeStatsStore{currentStreak: 9, lastActive: &last}
		streak, err := NewLedger(store).TouchStreak("u1", today)
		require.NoError(t, err)
		assert.Equal(t, 1, streak)
	})

	t.Run("always stamps last active date", func(t *testing.T) {
		store := &fakeStatsStore{}
		_, err := NewLedger(store).TouchStreak("u1", today)
		require.NoError(t, err)
		require.NotNil(t, store.lastActive)
		assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), *store.lastActive)
	})
}
