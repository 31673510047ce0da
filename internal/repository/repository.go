package repository

import (
	"github.com/avelazco/social-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID with its profile, posts and
	// memberships loaded
	FindByID(id uint64) (*models.User, error)

	// List retrieves all users with their relations loaded, in
	// primary-key order
	List() ([]models.User, error)

	// Exists reports whether a user row with the given ID exists
	Exists(id uint64) (bool, error)
}

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	// Create creates a new profile
	Create(profile *models.Profile) error

	// FindByID finds a profile by ID with its owning user loaded
	FindByID(id uint64) (*models.Profile, error)

	// FindByUserID finds the profile owned by the given user
	FindByUserID(userID uint64) (*models.Profile, error)

	// List retrieves all profiles with their owning users loaded, in
	// primary-key order
	List() ([]models.Profile, error)
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	// Create creates a new post
	Create(post *models.Post) error

	// FindByID finds a post by ID with its author loaded
	FindByID(id uint64) (*models.Post, error)

	// List retrieves all posts with their authors loaded, in
	// primary-key order
	List() ([]models.Post, error)
}

// GroupRepository defines the interface for group and membership data access
type GroupRepository interface {
	// Create creates a new group
	Create(group *models.Group) error

	// FindByID finds a group by ID with its member links loaded
	FindByID(id uint64) (*models.Group, error)

	// List retrieves all groups with their member links loaded, in
	// primary-key order
	List() ([]models.Group, error)

	// Exists reports whether a group row with the given ID exists
	Exists(id uint64) (bool, error)

	// AddMember creates a membership link
	AddMember(membership *models.UserGroup) error

	// FindMember finds a specific membership link
	FindMember(userID, groupID uint64) (*models.UserGroup, error)

	// ListMembers retrieves all membership links across all groups
	ListMembers() ([]models.UserGroup, error)
}
