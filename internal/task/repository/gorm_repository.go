package repository

import (
	"errors"
	"time"

	"ankiplan-backend/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindByID(id, userID string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) FindByUser(userID string, filter TaskFilter) ([]*domain.Task, error) {
	query := r.db.Where("user_id = ?", userID)
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	// Priority-queue contract: lower priority value first, insertion order
	// breaks ties.
	var tasks []*domain.Task
	err := query.Order("priority ASC, created_at ASC").Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) Update(task *domain.Task) error {
	task.UpdatedAt = time.Now().UTC()
	return r.db.Save(task).Error
}

func (r *gormTaskRepository) Delete(id string) error {
	return r.db.Delete(&domain.Task{}, "id = ?", id).Error
}

func (r *gormTaskRepository) TransitionStatus(id string, from []domain.TaskStatus, to domain.TaskStatus, now time.Time) (bool, error) {
	res := r.db.Model(&domain.Task{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *gormTaskRepository) FindDueForReset(category domain.Category, now time.Time) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Where("category = ? AND status = ? AND next_reset <= ?",
		category, domain.TaskStatusCompleted, now).Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) ResetToPending(id string, nextReset, now time.Time) (bool, error) {
	// Conditional on status so a sweep cannot clobber a task a user just
	// re-opened or deleted mid-pass.
	res := r.db.Model(&domain.Task{}).
		Where("id = ? AND status = ?", id, domain.TaskStatusCompleted).
		Updates(map[string]interface{}{
			"status":     domain.TaskStatusPending,
			"next_reset": nextReset,
			"proof_url":  "",
			"updated_at": now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
