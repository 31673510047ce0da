package repository

import (
	"github.com/avelazco/social-api/internal/models"
	"gorm.io/gorm"
)

// GormPostRepository is a GORM implementation of PostRepository
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &GormPostRepository{db: db}
}

// Create creates a new post
func (r *GormPostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// FindByID finds a post by ID with its author loaded
func (r *GormPostRepository) FindByID(id uint64) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Author").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves all posts with authors loaded, in primary-key order
func (r *GormPostRepository) List() ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Preload("Author").Order("id").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
