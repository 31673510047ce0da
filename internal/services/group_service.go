package services

import (
	"errors"
	"fmt"

	"github.com/avelazco/social-api/internal/models"
	"github.com/avelazco/social-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrMemberUserUnknown  = errors.New("membership user_id does not reference an existing user")
	ErrMemberGroupUnknown = errors.New("membership group_id does not reference an existing group")
	ErrAlreadyMember      = errors.New("user is already a member of this group")
)

// GroupService provides business logic for group and membership operations.
type GroupService struct {
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
}

// NewGroupService creates a new GroupService.
func NewGroupService(groupRepo repository.GroupRepository, userRepo repository.UserRepository) *GroupService {
	return &GroupService{
		groupRepo: groupRepo,
		userRepo:  userRepo,
	}
}

// ListGroups returns all groups with their member links loaded.
func (s *GroupService) ListGroups() ([]models.Group, error) {
	groups, err := s.groupRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

// ListMemberships returns all membership links across all groups.
func (s *GroupService) ListMemberships() ([]models.UserGroup, error) {
	memberships, err := s.groupRepo.ListMembers()
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return memberships, nil
}

// CreateGroupInput represents parameters to create a new group.
type CreateGroupInput struct {
	Name string
}

// CreateGroup persists a new group.
func (s *GroupService) CreateGroup(input CreateGroupInput) (*models.Group, error) {
	group := &models.Group{
		Name: input.Name,
	}

	if err := s.groupRepo.Create(group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return group, nil
}

// AddMembershipInput represents parameters to create a membership link.
type AddMembershipInput struct {
	UserID  uint64
	GroupID uint64
}

// AddMembership verifies both ends of the link exist, rejects duplicate
// pairs and persists the membership.
func (s *GroupService) AddMembership(input AddMembershipInput) (*models.UserGroup, error) {
	userExists, err := s.userRepo.Exists(input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}
	if !userExists {
		return nil, ErrMemberUserUnknown
	}

	groupExists, err := s.groupRepo.Exists(input.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify group: %w", err)
	}
	if !groupExists {
		return nil, ErrMemberGroupUnknown
	}

	if _, err := s.groupRepo.FindMember(input.UserID, input.GroupID); err == nil {
		return nil, ErrAlreadyMember
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to verify membership: %w", err)
	}

	membership := &models.UserGroup{
		UserID:  input.UserID,
		GroupID: input.GroupID,
	}

	if err := s.groupRepo.AddMember(membership); err != nil {
		return nil, fmt.Errorf("failed to add member to group: %w", err)
	}

	return membership, nil
}
