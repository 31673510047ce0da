package services

import (
	"errors"
	"fmt"

	"github.com/avelazco/social-api/internal/models"
	"github.com/avelazco/social-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileOwnerUnknown  = errors.New("profile user_id does not reference an existing user")
	ErrProfileAlreadyExists = errors.New("user already has a profile")
)

// ProfileService provides business logic for profile operations.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// GetProfile retrieves a profile by ID with its owning user loaded.
func (s *ProfileService) GetProfile(id uint64) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return profile, nil
}

// ListProfiles returns all profiles with owning users loaded.
func (s *ProfileService) ListProfiles() ([]models.Profile, error) {
	profiles, err := s.profileRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// CreateProfileInput represents parameters to create a new profile.
type CreateProfileInput struct {
	Bio    string
	UserID uint64
}

// CreateProfile verifies the owning user exists, persists the profile
// and returns it with the owning user loaded for serialization.
func (s *ProfileService) CreateProfile(input CreateProfileInput) (*models.Profile, error) {
	exists, err := s.userRepo.Exists(input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}
	if !exists {
		return nil, ErrProfileOwnerUnknown
	}

	if _, err := s.profileRepo.FindByUserID(input.UserID); err == nil {
		return nil, ErrProfileAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}

	profile := &models.Profile{
		Bio:    &input.Bio,
		UserID: input.UserID,
	}

	if err := s.profileRepo.Create(profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	created, err := s.profileRepo.FindByID(profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload profile: %w", err)
	}

	return created, nil
}
