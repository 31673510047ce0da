package repository

import (
	"github.com/avelazco/social-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID. Profile, Posts and Memberships are
// preloaded so the caller can serialize without further queries.
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.
		Preload("Profile").
		Preload("Posts").
		Preload("Memberships").
		First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves all users with relations loaded, in primary-key order
func (r *GormUserRepository) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.
		Preload("Profile").
		Preload("Posts").
		Preload("Memberships").
		Order("id").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Exists reports whether a user row with the given ID exists
func (r *GormUserRepository) Exists(id uint64) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
