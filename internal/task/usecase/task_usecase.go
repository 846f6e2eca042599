package usecase

import (
	"log"
	"time"

	"ankiplan-backend/internal/gamification"
	"ankiplan-backend/internal/task/domain"
	"ankiplan-backend/internal/task/repository"
	"ankiplan-backend/internal/task/reset"
	"ankiplan-backend/pkg/storage"
)

// taskUsecase implements TaskUsecase
type taskUsecase struct {
	taskRepo repository.TaskRepository
	logRepo  repository.TaskLogRepository
	ledger   *gamification.Ledger
	proofs   storage.Storage
	now      func() time.Time
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(
	taskRepo repository.TaskRepository,
	logRepo repository.TaskLogRepository,
	ledger *gamification.Ledger,
	proofs storage.Storage,
) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
		logRepo:  logRepo,
		ledger:   ledger,
		proofs:   proofs,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *taskUsecase) CreateTask(userID string, req CreateTaskRequest) (*domain.Task, error) {
	category := domain.Category(req.Category)
	if !category.Valid() {
		return nil, domain.ErrInvalidCategory
	}

	value := req.Value
	if value <= 0 {
		value = domain.DefaultTaskValue
	}
	priority := req.Priority
	if priority < 1 {
		priority = 1
	}

	nextReset := reset.NextReset(category, u.now())
	task := &domain.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    category,
		Priority:    priority,
		Value:       value,
		Status:      domain.TaskStatusPending,
		NextReset:   &nextReset,
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) GetTaskByID(userID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(taskID, userID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

func (u *taskUsecase) GetUserTasks(userID string, status, category *string) ([]*domain.Task, error) {
	var filter repository.TaskFilter
	if status != nil && *status != "" {
		s := domain.TaskStatus(*status)
		if !s.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		filter.Status = &s
	}
	if category != nil && *category != "" {
		c := domain.Category(*category)
		if !c.Valid() {
			return nil, domain.ErrInvalidCategory
		}
		filter.Category = &c
	}
	return u.taskRepo.FindByUser(userID, filter)
}

func (u *taskUsecase) GetPriorityQueue(userID string) ([]*domain.Task, error) {
	tasks, err := u.taskRepo.FindByUser(userID, repository.TaskFilter{})
	if err != nil {
		return nil, err
	}
	queue := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == domain.TaskStatusPending || t.Status == domain.TaskStatusInProgress {
			queue = append(queue, t)
		}
	}
	return queue, nil
}

func (u *taskUsecase) UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error) {
	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	if updates.Title != nil {
		task.Title = *updates.Title
	}
	if updates.Description != nil {
		task.Description = *updates.Description
	}
	if updates.Priority != nil && *updates.Priority >= 1 {
		task.Priority = *updates.Priority
	}
	if updates.Value != nil && *updates.Value > 0 {
		task.Value = *updates.Value
	}
	if updates.Category != nil {
		category := domain.Category(*updates.Category)
		if !category.Valid() {
			return nil, domain.ErrInvalidCategory
		}
		if category != task.Category {
			// Switching cadence restarts the clock: progress toward the old
			// reset is discarded.
			task.Category = category
			nextReset := reset.NextReset(category, u.now())
			task.NextReset = &nextReset
		}
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) CompleteTask(userID, taskID string) (*CompletionResult, error) {
	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	now := u.now()
	from := []domain.TaskStatus{domain.TaskStatusPending, domain.TaskStatusInProgress, domain.TaskStatusSkipped}
	ok, err := u.taskRepo.TransitionStatus(task.ID, from, domain.TaskStatusCompleted, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrAlreadyCompleted
	}
	task.Status = domain.TaskStatusCompleted
	task.UpdatedAt = now

	// The transition above is committed; everything below is best-effort
	// telemetry and must not roll it back.
	result := &CompletionResult{Task: task}

	if err := u.logRepo.Append(&domain.TaskLog{
		UserID:    userID,
		TaskID:    task.ID,
		Status:    domain.TaskStatusCompleted,
		Category:  task.Category,
		Timestamp: now,
	}); err != nil {
		log.Printf("[TaskUsecase] task %s completed but log append failed: %v", task.ID, err)
		result.GamificationErr = err.Error()
	}

	delta, err := u.ledger.Award(userID, task.Value, task.Category, task.ProofURL != "")
	if err != nil {
		log.Printf("[TaskUsecase] task %s completed but award failed: %v", task.ID, err)
		result.GamificationErr = err.Error()
		return result, nil
	}
	result.PointsDelta = delta

	streak, err := u.ledger.TouchStreak(userID, now)
	if err != nil {
		log.Printf("[TaskUsecase] task %s completed but streak update failed: %v", task.ID, err)
		result.GamificationErr = err.Error()
		return result, nil
	}
	result.Streak = streak

	return result, nil
}

func (u *taskUsecase) SkipTask(userID, taskID string) (*CompletionResult, error) {
	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	now := u.now()
	from := []domain.TaskStatus{domain.TaskStatusPending, domain.TaskStatusInProgress}
	ok, err := u.taskRepo.TransitionStatus(task.ID, from, domain.TaskStatusSkipped, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrAlreadyCompleted
	}
	task.Status = domain.TaskStatusSkipped
	task.UpdatedAt = now

	result := &CompletionResult{Task: task}

	if err := u.logRepo.Append(&domain.TaskLog{
		UserID:    userID,
		TaskID:    task.ID,
		Status:    domain.TaskStatusSkipped,
		Category:  task.Category,
		Timestamp: now,
	}); err != nil {
		log.Printf("[TaskUsecase] task %s skipped but log append failed: %v", task.ID, err)
		result.GamificationErr = err.Error()
	}

	// A skip costs points but deliberately leaves the streak alone.
	delta, err := u.ledger.Penalize(userID)
	if err != nil {
		log.Printf("[TaskUsecase] task %s skipped but penalty failed: %v", task.ID, err)
		result.GamificationErr = err.Error()
		return result, nil
	}
	result.PointsDelta = delta

	return result, nil
}

func (u *taskUsecase) SetStatus(userID, taskID string, status domain.TaskStatus) (*domain.Task, error) {
	if status != domain.TaskStatusPending && status != domain.TaskStatusInProgress {
		return nil, domain.ErrInvalidStatus
	}

	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	now := u.now()
	from := []domain.TaskStatus{domain.TaskStatusPending, domain.TaskStatusInProgress}
	ok, err := u.taskRepo.TransitionStatus(task.ID, from, status, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrAlreadyCompleted
	}
	task.Status = status
	task.UpdatedAt = now
	return task, nil
}

func (u *taskUsecase) DeleteTask(userID, taskID string) error {
	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return err
	}

	if task.ProofURL != "" {
		if err := u.proofs.Remove(task.ProofURL); err != nil {
			log.Printf("[TaskUsecase] failed to remove proof for task %s: %v", task.ID, err)
		}
	}

	return u.taskRepo.Delete(task.ID)
}

func (u *taskUsecase) AttachProof(userID, taskID string, ref string) (*domain.Task, error) {
	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	// A re-upload replaces the reference; drop the old artifact so it does
	// not sit orphaned in the uploads dir.
	if task.ProofURL != "" && task.ProofURL != ref {
		if err := u.proofs.Remove(task.ProofURL); err != nil {
			log.Printf("[TaskUsecase] failed to remove old proof for task %s: %v", task.ID, err)
		}
	}

	task.ProofURL = ref
	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}
