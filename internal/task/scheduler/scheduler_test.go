package scheduler

import (
	"errors"
	"testing"
	"time"

	"ankiplan-backend/internal/task/domain"
	"ankiplan-backend/internal/task/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sweepRepo implements just enough of TaskRepository for the sweeper.
type sweepRepo struct {
	tasks   map[string]*domain.Task
	failFor map[domain.Category]error
}

func newSweepRepo() *sweepRepo {
	return &sweepRepo{
		tasks:   make(map[string]*domain.Task),
		failFor: make(map[domain.Category]error),
	}
}

func (r *sweepRepo) add(task *domain.Task) {
	r.tasks[task.ID] = task
}

func (r *sweepRepo) Create(*domain.Task) error { return nil }
func (r *sweepRepo) Update(*domain.Task) error { return nil }
func (r *sweepRepo) Delete(string) error       { return nil }

func (r *sweepRepo) FindByID(id, userID string) (*domain.Task, error) { return nil, nil }

func (r *sweepRepo) FindByUser(string, repository.TaskFilter) ([]*domain.Task, error) {
	return nil, nil
}

func (r *sweepRepo) TransitionStatus(string, []domain.TaskStatus, domain.TaskStatus, time.Time) (bool, error) {
	return false, nil
}

func (r *sweepRepo) FindDueForReset(category domain.Category, now time.Time) ([]*domain.Task, error) {
	if err := r.failFor[category]; err != nil {
		return nil, err
	}
	var out []*domain.Task
	for _, task := range r.tasks {
		if task.Category == category && task.Status == domain.TaskStatusCompleted &&
			task.NextReset != nil && !task.NextReset.After(now) {
			out = append(out, task)
		}
	}
	return out, nil
}

func (r *sweepRepo) ResetToPending(id string, nextReset, now time.Time) (bool, error) {
	task, ok := r.tasks[id]
	if !ok || task.Status != domain.TaskStatusCompleted {
		return false, nil
	}
	task.Status = domain.TaskStatusPending
	task.NextReset = &nextReset
	task.ProofURL = ""
	task.UpdatedAt = now
	return true, nil
}

func completedTask(id string, category domain.Category, nextReset time.Time) *domain.Task {
	return &domain.Task{
		ID:        id,
		UserID:    "alice",
		Title:     id,
		Category:  category,
		Status:    domain.TaskStatusCompleted,
		NextReset: &nextReset,
		ProofURL:  "/uploads/" + id + "_proof.jpg",
	}
}

func TestRunOnceResetsDueTasks(t *testing.T) {
	repo := newSweepRepo()
	// Sweep runs at noon; the daily task came due at midnight.
	sweepTime := time.Date(2024, 3, 19, 12, 0, 0, 0, time.UTC)
	repo.add(completedTask("due-daily", domain.CategoryDaily, time.Date(2024, 3, 19, 0, 0, 0, 0, time.UTC)))
	repo.add(completedTask("future-daily", domain.CategoryDaily, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)))

	s := NewResetScheduler(repo, time.Hour, 5*time.Minute)
	s.now = func() time.Time { return sweepTime }

	count, err := s.RunOnce()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	due := repo.tasks["due-daily"]
	assert.Equal(t, domain.TaskStatusPending, due.Status)
	assert.Equal(t, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), *due.NextReset,
		"next_reset advances to midnight after the sweep time")
	assert.Empty(t, due.ProofURL, "proof does not carry into the new cycle")

	future := repo.tasks["future-daily"]
	assert.Equal(t, domain.TaskStatusCompleted, future.Status, "not yet due, left alone")
}

func TestRunOnceSkipsNonCompletedTasks(t *testing.T) {
	repo := newSweepRepo()
	sweepTime := time.Date(2024, 3, 19, 12, 0, 0, 0, time.UTC)
	stale := completedTask("stale-pending", domain.CategoryDaily, time.Date(2024, 3, 19, 0, 0, 0, 0, time.UTC))
	stale.Status = domain.TaskStatusPending
	repo.add(stale)

	s := NewResetScheduler(repo, time.Hour, 5*time.Minute)
	s.now = func() time.Time { return sweepTime }

	count, err := s.RunOnce()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, domain.TaskStatusPending, stale.Status)
}

func TestRunOnceContinuesPastCategoryError(t *testing.T) {
	repo := newSweepRepo()
	sweepTime := time.Date(2024, 3, 19, 12, 0, 0, 0, time.UTC)
	repo.failFor[domain.CategoryDaily] = errors.New("store unavailable")
	repo.add(completedTask("due-weekly", domain.CategoryWeekly, time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)))

	s := NewResetScheduler(repo, time.Hour, 5*time.Minute)
	s.now = func() time.Time { return sweepTime }

	count, err := s.RunOnce()
	assert.Error(t, err, "first error is surfaced for retry scheduling")
	assert.Equal(t, 1, count, "other categories still swept")
	assert.Equal(t, domain.TaskStatusPending, repo.tasks["due-weekly"].Status)
}

func TestStartStop(t *testing.T) {
	repo := newSweepRepo()
	s := NewResetScheduler(repo, time.Hour, time.Hour)

	s.Start()
	s.Stop()

	// Stop has waited for the loop; the done channel must be closed.
	select {
	case <-s.doneChan:
	default:
		t.Fatal("scheduler loop still running after Stop")
	}
}
