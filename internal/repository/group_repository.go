package repository

import (
	"github.com/avelazco/social-api/internal/models"
	"gorm.io/gorm"
)

// GormGroupRepository is a GORM implementation of GroupRepository
type GormGroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &GormGroupRepository{db: db}
}

// Create creates a new group
func (r *GormGroupRepository) Create(group *models.Group) error {
	return r.db.Create(group).Error
}

// FindByID finds a group by ID with its member links loaded
func (r *GormGroupRepository) FindByID(id uint64) (*models.Group, error) {
	var group models.Group
	if err := r.db.Preload("Members").First(&group, id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// List retrieves all groups with member links loaded, in primary-key order
func (r *GormGroupRepository) List() ([]models.Group, error) {
	var groups []models.Group
	if err := r.db.Preload("Members").Order("id").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// Exists reports whether a group row with the given ID exists
func (r *GormGroupRepository) Exists(id uint64) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Group{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddMember creates a membership link
func (r *GormGroupRepository) AddMember(membership *models.UserGroup) error {
	return r.db.Create(membership).Error
}

// FindMember finds a specific membership link
func (r *GormGroupRepository) FindMember(userID, groupID uint64) (*models.UserGroup, error) {
	var membership models.UserGroup
	if err := r.db.Where("user_id = ? AND group_id = ?", userID, groupID).
		First(&membership).Error; err != nil {
		return nil, err
	}
	return &membership, nil
}

// ListMembers retrieves all membership links across all groups
func (r *GormGroupRepository) ListMembers() ([]models.UserGroup, error) {
	var memberships []models.UserGroup
	if err := r.db.Order("user_id, group_id").Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}
