package usecase

import (
	"errors"
	"sort"

	authrepo "ankiplan-backend/internal/auth/repository"
	groupdomain "ankiplan-backend/internal/group/domain"
	"ankiplan-backend/internal/group/repository"
)

var (
	ErrGroupNotFound  = errors.New("group not found")
	ErrAlreadyMember  = errors.New("user is already a member of this group")
	ErrNotGroupMember = errors.New("user is not a member of this group")
)

// GroupUsecase defines the interface for group business logic
type GroupUsecase interface {
	CreateGroup(adminID, name string, poolAmount int) (*groupdomain.Group, error)
	JoinGroup(groupID, userID string) (*groupdomain.Group, error)
	GetGroup(groupID string) (*groupdomain.Group, error)
	MyGroups(userID string) ([]*groupdomain.Group, error)

	// GroupLeaderboard ranks a group's members by total points descending
	GroupLeaderboard(groupID, requesterID string) ([]*groupdomain.LeaderboardEntry, error)

	// AllTimeLeaderboard ranks all users by total points descending
	AllTimeLeaderboard(limit int) ([]*groupdomain.LeaderboardEntry, error)
}

type groupUsecase struct {
	groupRepo repository.GroupRepository
	userRepo  authrepo.UserRepository
}

// NewGroupUsecase creates a new instance of groupUsecase
func NewGroupUsecase(groupRepo repository.GroupRepository, userRepo authrepo.UserRepository) GroupUsecase {
	return &groupUsecase{
		groupRepo: groupRepo,
		userRepo:  userRepo,
	}
}

func (u *groupUsecase) CreateGroup(adminID, name string, poolAmount int) (*groupdomain.Group, error) {
	if name == "" {
		return nil, errors.New("group name is required")
	}

	group := &groupdomain.Group{
		Name:       name,
		AdminID:    adminID,
		PoolAmount: poolAmount,
	}
	if err := u.groupRepo.Create(group); err != nil {
		return nil, err
	}
	return group, nil
}

func (u *groupUsecase) JoinGroup(groupID, userID string) (*groupdomain.Group, error) {
	group, err := u.groupRepo.FindByID(groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	member, err := u.groupRepo.IsMember(groupID, userID)
	if err != nil {
		return nil, err
	}
	if member {
		return nil, ErrAlreadyMember
	}

	if err := u.groupRepo.AddMember(groupID, userID); err != nil {
		return nil, err
	}
	return group, nil
}

func (u *groupUsecase) GetGroup(groupID string) (*groupdomain.Group, error) {
	group, err := u.groupRepo.FindByID(groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return group, nil
}

func (u *groupUsecase) MyGroups(userID string) ([]*groupdomain.Group, error) {
	return u.groupRepo.GroupsForUser(userID)
}

func (u *groupUsecase) GroupLeaderboard(groupID, requesterID string) ([]*groupdomain.LeaderboardEntry, error) {
	group, err := u.groupRepo.FindByID(groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	member, err := u.groupRepo.IsMember(groupID, requesterID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, ErrNotGroupMember
	}

	ids, err := u.groupRepo.MemberIDs(groupID)
	if err != nil {
		return nil, err
	}

	users, err := u.userRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	entries := make([]*groupdomain.LeaderboardEntry, 0, len(users))
	for _, user := range users {
		entries = append(entries, &groupdomain.LeaderboardEntry{
			UserID:      user.ID,
			Username:    user.Username,
			Email:       user.Email,
			TotalPoints: user.TotalPoints,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalPoints > entries[j].TotalPoints
	})
	return entries, nil
}

func (u *groupUsecase) AllTimeLeaderboard(limit int) ([]*groupdomain.LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	users, err := u.userRepo.TopByPoints(limit)
	if err != nil {
		return nil, err
	}

	entries := make([]*groupdomain.LeaderboardEntry, 0, len(users))
	for _, user := range users {
		entries = append(entries, &groupdomain.LeaderboardEntry{
			UserID:      user.ID,
			Username:    user.Username,
			Email:       user.Email,
			TotalPoints: user.TotalPoints,
		})
	}
	return entries, nil
}
