package usecase

import (
	"errors"
	"fmt"
	"time"

	authrepo "ankiplan-backend/internal/auth/repository"
	taskdomain "ankiplan-backend/internal/task/domain"
	taskrepo "ankiplan-backend/internal/task/repository"
)

var ErrUserNotFound = errors.New("user not found")

// PeriodStats summarizes completion/skip activity over a window.
type PeriodStats struct {
	Completed      int    `json:"completed"`
	Skipped        int    `json:"skipped"`
	Total          int    `json:"total"`
	CompletionRate string `json:"completion_rate"`
}

// DayStats is one day of a range breakdown.
type DayStats struct {
	Completed int `json:"completed"`
	Skipped   int `json:"skipped"`
}

// Dashboard is the per-user analytics overview.
type Dashboard struct {
	UserID            string                      `json:"user_id"`
	Username          string                      `json:"username"`
	CurrentStreak     int                         `json:"current_streak"`
	TotalPoints       int                         `json:"total_points"`
	CompletedTasks    int                         `json:"total_completed_tasks"`
	FailedTasks       int                         `json:"total_failed_tasks"`
	WeeklyStats       PeriodStats                 `json:"weekly_stats"`
	MonthlyCompleted  int                         `json:"monthly_completed"`
	CategoryBreakdown map[taskdomain.Category]int `json:"category_breakdown_weekly"`
}

// RangeReport is an N-day breakdown of log activity.
type RangeReport struct {
	UserID     string               `json:"user_id"`
	PeriodDays int                  `json:"period_days"`
	Stats      PeriodStats          `json:"stats"`
	Daily      map[string]*DayStats `json:"daily"`
}

// AnalyticsUsecase reads the task log; it never writes anything.
type AnalyticsUsecase interface {
	Dashboard(userID string) (*Dashboard, error)
	Range(userID string, days int) (*RangeReport, error)
}

type analyticsUsecase struct {
	logRepo  taskrepo.TaskLogRepository
	userRepo authrepo.UserRepository
	now      func() time.Time
}

// NewAnalyticsUsecase creates a new instance of analyticsUsecase
func NewAnalyticsUsecase(logRepo taskrepo.TaskLogRepository, userRepo authrepo.UserRepository) AnalyticsUsecase {
	return &analyticsUsecase{
		logRepo:  logRepo,
		userRepo: userRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *analyticsUsecase) Dashboard(userID string) (*Dashboard, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	now := u.now()
	weekLogs, err := u.logRepo.FindByUserSince(userID, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}
	monthLogs, err := u.logRepo.FindByUserSince(userID, now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	breakdown := make(map[taskdomain.Category]int)
	for _, entry := range weekLogs {
		if entry.Status == taskdomain.TaskStatusCompleted {
			breakdown[entry.Category]++
		}
	}

	monthlyCompleted := 0
	for _, entry := range monthLogs {
		if entry.Status == taskdomain.TaskStatusCompleted {
			monthlyCompleted++
		}
	}

	return &Dashboard{
		UserID:            user.ID,
		Username:          user.Username,
		CurrentStreak:     user.CurrentStreak,
		TotalPoints:       user.TotalPoints,
		CompletedTasks:    user.CompletedTasks,
		FailedTasks:       user.FailedTasks,
		WeeklyStats:       summarize(weekLogs),
		MonthlyCompleted:  monthlyCompleted,
		CategoryBreakdown: breakdown,
	}, nil
}

func (u *analyticsUsecase) Range(userID string, days int) (*RangeReport, error) {
	if days < 1 {
		days = 7
	}
	if days > 365 {
		days = 365
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	logs, err := u.logRepo.FindByUserSince(userID, u.now().AddDate(0, 0, -days))
	if err != nil {
		return nil, err
	}

	daily := make(map[string]*DayStats)
	for _, entry := range logs {
		day := entry.Timestamp.UTC().Format("2006-01-02")
		stats, ok := daily[day]
		if !ok {
			stats = &DayStats{}
			daily[day] = stats
		}
		switch entry.Status {
		case taskdomain.TaskStatusCompleted:
			stats.Completed++
		case taskdomain.TaskStatusSkipped:
			stats.Skipped++
		}
	}

	return &RangeReport{
		UserID:     userID,
		PeriodDays: days,
		Stats:      summarize(logs),
		Daily:      daily,
	}, nil
}

func summarize(logs []*taskdomain.TaskLog) PeriodStats {
	stats := PeriodStats{}
	for _, entry := range logs {
		switch entry.Status {
		case taskdomain.TaskStatusCompleted:
			stats.Completed++
		case taskdomain.TaskStatusSkipped:
			stats.Skipped++
		}
	}
	stats.Total = stats.Completed + stats.Skipped

	rate := 0.0
	if stats.Total > 0 {
		rate = float64(stats.Completed) / float64(stats.Total) * 100
	}
	stats.CompletionRate = fmt.Sprintf("%.0f%%", rate)
	return stats
}
