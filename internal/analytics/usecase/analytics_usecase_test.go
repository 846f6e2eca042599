package usecase

import (
	"testing"
	"time"

	authdomain "ankiplan-backend/internal/auth/domain"
	taskdomain "ankiplan-backend/internal/task/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLogRepo struct {
	logs []*taskdomain.TaskLog
}

func (r *fakeLogRepo) Append(log *taskdomain.TaskLog) error {
	r.logs = append(r.logs, log)
	return nil
}

func (r *fakeLogRepo) FindByUserSince(userID string, since time.Time) ([]*taskdomain.TaskLog, error) {
	var out []*taskdomain.TaskLog
	for _, entry := range r.logs {
		if entry.UserID == userID && !entry.Timestamp.Before(since) {
			out = append(out, entry)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]*authdomain.User
}

func (r *fakeUserRepo) Create(user *authdomain.User) error { return nil }
func (r *fakeUserRepo) Update(user *authdomain.User) error { return nil }

func (r *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) { return nil, nil }

func (r *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByIDs(ids []string) ([]*authdomain.User, error) { return nil, nil }

func (r *fakeUserRepo) TopByPoints(limit int) ([]*authdomain.User, error) { return nil, nil }

func (r *fakeUserRepo) IncrementPoints(userID string, delta int, completed bool) error { return nil }

func (r *fakeUserRepo) StreakState(userID string) (int, *time.Time, error) { return 0, nil, nil }

func (r *fakeUserRepo) SetStreak(userID string, streak int, lastActive time.Time) error { return nil }

func (r *fakeUserRepo) SaveRefreshToken(token *authdomain.RefreshToken) error { return nil }

func (r *fakeUserRepo) FindRefreshToken(token string) (*authdomain.RefreshToken, error) {
	return nil, nil
}

func (r *fakeUserRepo) DeleteRefreshToken(token string) error { return nil }

func logEntry(userID string, status taskdomain.TaskStatus, category taskdomain.Category, at time.Time) *taskdomain.TaskLog {
	return &taskdomain.TaskLog{
		UserID:    userID,
		TaskID:    "t1",
		Status:    status,
		Category:  category,
		Timestamp: at,
	}
}

func TestDashboard(t *testing.T) {
	now := time.Date(2024, 3, 19, 12, 0, 0, 0, time.UTC)
	logs := &fakeLogRepo{}
	users := &fakeUserRepo{users: map[string]*authdomain.User{
		"alice": {ID: "alice", Username: "alice", CurrentStreak: 4, TotalPoints: 120, CompletedTasks: 12, FailedTasks: 3},
	}}

	// Three completions and one skip inside the week, one completion outside
	// the week but inside the month, and noise from another user.
	logs.Append(logEntry("alice", taskdomain.TaskStatusCompleted, taskdomain.CategoryDaily, now.AddDate(0, 0, -1)))
	logs.Append(logEntry("alice", taskdomain.TaskStatusCompleted, taskdomain.CategoryDaily, now.AddDate(0, 0, -2)))
	logs.Append(logEntry("alice", taskdomain.TaskStatusCompleted, taskdomain.CategoryWeekly, now.AddDate(0, 0, -3)))
	logs.Append(logEntry("alice", taskdomain.TaskStatusSkipped, taskdomain.CategoryDaily, now.AddDate(0, 0, -1)))
	logs.Append(logEntry("alice", taskdomain.TaskStatusCompleted, taskdomain.CategoryMonthly, now.AddDate(0, 0, -20)))
	logs.Append(logEntry("bob", taskdomain.TaskStatusCompleted, taskdomain.CategoryDaily, now.AddDate(0, 0, -1)))

	uc := NewAnalyticsUsecase(logs, users).(*analyticsUsecase)
	uc.now = func() time.Time { return now }

	dash, err := uc.Dashboard("alice")
	require.NoError(t, err)

	assert.Equal(t, "alice", dash.Username)
	assert.Equal(t, 4, dash.CurrentStreak)
	assert.Equal(t, 120, dash.TotalPoints)

	assert.Equal(t, 3, dash.WeeklyStats.Completed)
	assert.Equal(t, 1, dash.WeeklyStats.Skipped)
	assert.Equal(t, 4, dash.WeeklyStats.Total)
	assert.Equal(t, "75%", dash.WeeklyStats.CompletionRate)

	assert.Equal(t, 4, dash.MonthlyCompleted)
	assert.Equal(t, 2, dash.CategoryBreakdown[taskdomain.CategoryDaily])
	assert.Equal(t, 1, dash.CategoryBreakdown[taskdomain.CategoryWeekly])
}

func TestDashboardUnknownUser(t *testing.T) {
	uc := NewAnalyticsUsecase(&fakeLogRepo{}, &fakeUserRepo{users: map[string]*authdomain.User{}})

	_, err := uc.Dashboard("ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRange(t *testing.T) {
	now := time.Date(2024, 3, 19, 12, 0, 0, 0, time.UTC)
	logs := &fakeLogRepo{}
	users := &fakeUserRepo{users: map[string]*authdomain.User{
		"alice": {ID: "alice", Username: "alice"},
	}}

	logs.Append(logEntry("alice", taskdomain.TaskStatusCompleted, taskdomain.CategoryDaily, now.AddDate(0, 0, -1)))
	logs.Append(logEntry("alice", taskdomain.TaskStatusSkipped, taskdomain.CategoryDaily, now.AddDate(0, 0, -1)))
	logs.Append(logEntry("alice", taskdomain.TaskStatusCompleted, taskdomain.CategoryDaily, now.AddDate(0, 0, -2)))

	uc := NewAnalyticsUsecase(logs, users).(*analyticsUsecase)
	uc.now = func() time.Time { return now }

	report, err := uc.Range("alice", 14)
	require.NoError(t, err)

	assert.Equal(t, 14, report.PeriodDays)
	assert.Equal(t, 3, report.Stats.Total)
	assert.Equal(t, "67%", report.Stats.CompletionRate)

	require.Contains(t, report.Daily, "2024-03-18")
	assert.Equal(t, 1, report.Daily["2024-03-18"].Completed)
	assert.Equal(t, 1, report.Daily["2024-03-18"].Skipped)
	require.Contains(t, report.Daily, "2024-03-17")
	assert.Equal(t, 1, report.Daily["2024-03-17"].Completed)
}

func TestRangeClampsDays(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*authdomain.User{"alice": {ID: "alice"}}}
	uc := NewAnalyticsUsecase(&fakeLogRepo{}, users)

	report, err := uc.Range("alice", 0)
	require.NoError(t, err)
	assert.Equal(t, 7, report.PeriodDays)

	report, err = uc.Range("alice", 10000)
	require.NoError(t, err)
	assert.Equal(t, 365, report.PeriodDays)
}
