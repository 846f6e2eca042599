package scheduler

import (
	"log"
	"time"

	"ankiplan-backend/internal/task/domain"
	"ankiplan-backend/internal/task/repository"
	"ankiplan-backend/internal/task/reset"
)

// ResetScheduler sweeps completed recurring tasks back to pending once their
// next_reset has elapsed. One instance runs per process; a second instance
// would double-process due tasks.
type ResetScheduler struct {
	taskRepo      repository.TaskRepository
	interval      time.Duration
	retryInterval time.Duration
	now           func() time.Time
	stopChan      chan struct{}
	doneChan      chan struct{}
}

// NewResetScheduler creates a new sweeper. retryInterval is used after a pass
// that hit an error, so a transient store failure is retried sooner than the
// steady-state interval.
func NewResetScheduler(taskRepo repository.TaskRepository, interval, retryInterval time.Duration) *ResetScheduler {
	return &ResetScheduler{
		taskRepo:      taskRepo,
		interval:      interval,
		retryInterval: retryInterval,
		now:           func() time.Time { return time.Now().UTC() },
		stopChan:      make(chan struct{}),
		doneChan:      make(chan struct{}),
	}
}

// Start begins the sweep loop. The first pass runs immediately; the loop only
// exits when Stop is called.
func (s *ResetScheduler) Start() {
	log.Printf("[ResetScheduler] starting (interval: %s, retry: %s)", s.interval, s.retryInterval)

	go func() {
		defer close(s.doneChan)

		timer := time.NewTimer(0)
		defer timer.Stop()

		for {
			select {
			case <-timer.C:
				count, err := s.RunOnce()
				if err != nil {
					log.Printf("[ResetScheduler] sweep pass failed: %v", err)
					timer.Reset(s.retryInterval)
					continue
				}
				if count > 0 {
					log.Printf("[ResetScheduler] reset %d tasks to pending", count)
				}
				timer.Reset(s.interval)
			case <-s.stopChan:
				log.Println("[ResetScheduler] stopped")
				return
			}
		}
	}()
}

// Stop signals the loop and waits for the current pass to finish.
func (s *ResetScheduler) Stop() {
	close(s.stopChan)
	<-s.doneChan
}

// RunOnce performs a single sweep across all categories and returns how many
// tasks were transitioned. An error from one category does not stop the
// others; the first error is returned for retry scheduling.
func (s *ResetScheduler) RunOnce() (int, error) {
	now := s.now()
	total := 0
	var firstErr error

	for _, category := range domain.Categories {
		due, err := s.taskRepo.FindDueForReset(category, now)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		for _, task := range due {
			next := reset.NextReset(category, now)
			ok, err := s.taskRepo.ResetToPending(task.ID, next, now)
			if err != nil {
				log.Printf("[ResetScheduler] failed to reset task %s: %v", task.ID, err)
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			// ok is false when the task changed state under us; skip it
			// silently, the next pass will see its new state.
			if ok {
				total++
			}
		}
	}

	return total, firstErr
}
