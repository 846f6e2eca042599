package repository

import (
	"errors"
	"time"

	authdomain "ankiplan-backend/internal/auth/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	FindByIDs(ids []string) ([]*authdomain.User, error)
	Update(user *authdomain.User) error

	// TopByPoints returns up to limit users ordered by total_points descending
	TopByPoints(limit int) ([]*authdomain.User, error)

	// IncrementPoints atomically adds delta to total_points and bumps the
	// completed or failed counter
	IncrementPoints(userID string, delta int, completed bool) error

	// StreakState returns the user's current streak and last active date
	StreakState(userID string) (int, *time.Time, error)

	// SetStreak stores a new streak value and last active date
	SetStreak(userID string, streak int, lastActive time.Time) error

	SaveRefreshToken(token *authdomain.RefreshToken) error
	FindRefreshToken(token string) (*authdomain.RefreshToken, error)
	DeleteRefreshToken(token string) error
}

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(user *authdomain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	return r.db.Create(user).Error
}

func (r *userRepository) FindByEmail(email string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByIDs(ids []string) ([]*authdomain.User, error) {
	var users []*authdomain.User
	err := r.db.Where("id IN ?", ids).Find(&users).Error
	return users, err
}

func (r *userRepository) Update(user *authdomain.User) error {
	user.UpdatedAt = time.Now()
	return r.db.Save(user).Error
}

func (r *userRepository) TopByPoints(limit int) ([]*authdomain.User, error) {
	var users []*authdomain.User
	err := r.db.Order("total_points DESC").Limit(limit).Find(&users).Error
	return users, err
}

func (r *userRepository) IncrementPoints(userID string, delta int, completed bool) error {
	counter := "completed_tasks"
	if !completed {
		counter = "failed_tasks"
	}
	return r.db.Model(&authdomain.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"total_points": gorm.Expr("total_points + ?", delta),
			counter:        gorm.Expr(counter + " + 1"),
		}).Error
}

func (r *userRepository) StreakState(userID string) (int, *time.Time, error) {
	user, err := r.FindByID(userID)
	if err != nil {
		return 0, nil, err
	}
	if user == nil {
		return 0, nil, errors.New("user not found")
	}
	return user.CurrentStreak, user.LastActiveDate, nil
}

func (r *userRepository) SetStreak(userID string, streak int, lastActive time.Time) error {
	return r.db.Model(&authdomain.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"current_streak":   streak,
			"last_active_date": lastActive,
		}).Error
}

func (r *userRepository) SaveRefreshToken(token *authdomain.RefreshToken) error {
	return r.db.Create(token).Error
}

func (r *userRepository) FindRefreshToken(token string) (*authdomain.RefreshToken, error) {
	var refreshToken authdomain.RefreshToken
	err := r.db.Where("token = ?", token).First(&refreshToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &refreshToken, nil
}

func (r *userRepository) DeleteRefreshToken(token string) error {
	return r.db.Where("token = ?", token).Delete(&authdomain.RefreshToken{}).Error
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
