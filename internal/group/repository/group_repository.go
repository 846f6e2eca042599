package repository

import (
	"errors"
	"time"

	groupdomain "ankiplan-backend/internal/group/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupRepository defines the interface for group data access
type GroupRepository interface {
	Create(group *groupdomain.Group) error
	FindByID(id string) (*groupdomain.Group, error)
	AddMember(groupID, userID string) error
	IsMember(groupID, userID string) (bool, error)
	MemberIDs(groupID string) ([]string, error)
	GroupsForUser(userID string) ([]*groupdomain.Group, error)
}

type gormGroupRepository struct {
	db *gorm.DB
}

// NewGormGroupRepository creates a new GORM-based GroupRepository
func NewGormGroupRepository(db *gorm.DB) GroupRepository {
	return &gormGroupRepository{db: db}
}

func (r *gormGroupRepository) Create(group *groupdomain.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	group.CreatedAt = now
	group.UpdatedAt = now

	// The creator is a member from the start.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		member := &groupdomain.GroupMember{
			GroupID:  group.ID,
			UserID:   group.AdminID,
			JoinedAt: now,
		}
		return tx.Create(member).Error
	})
}

func (r *gormGroupRepository) FindByID(id string) (*groupdomain.Group, error) {
	var group groupdomain.Group
	err := r.db.Where("id = ?", id).First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

func (r *gormGroupRepository) AddMember(groupID, userID string) error {
	member := &groupdomain.GroupMember{
		GroupID:  groupID,
		UserID:   userID,
		JoinedAt: time.Now().UTC(),
	}
	return r.db.Create(member).Error
}

func (r *gormGroupRepository) IsMember(groupID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&groupdomain.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *gormGroupRepository) MemberIDs(groupID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&groupdomain.GroupMember{}).
		Where("group_id = ?", groupID).
		Pluck("user_id", &ids).Error
	return ids, err
}

func (r *gormGroupRepository) GroupsForUser(userID string) ([]*groupdomain.Group, error) {
	var groups []*groupdomain.Group
	err := r.db.
		Joins("JOIN group_members ON group_members.group_id = groups.id").
		Where("group_members.user_id = ?", userID).
		Find(&groups).Error
	return groups, err
}
