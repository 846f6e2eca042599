package repository

import (
	"time"

	"ankiplan-backend/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormTaskLogRepository struct {
	db *gorm.DB
}

// NewGormTaskLogRepository creates a new GORM-based TaskLogRepository
func NewGormTaskLogRepository(db *gorm.DB) TaskLogRepository {
	return &gormTaskLogRepository{db: db}
}

func (r *gormTaskLogRepository) Append(log *domain.TaskLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now().UTC()
	}
	return r.db.Create(log).Error
}

func (r *gormTaskLogRepository) FindByUserSince(userID string, since time.Time) ([]*domain.TaskLog, error) {
	var logs []*domain.TaskLog
	err := r.db.Where("user_id = ? AND timestamp >= ?", userID, since).
		Order("timestamp ASC").Find(&logs).Error
	return logs, err
}
