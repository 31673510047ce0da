package dto

import (
	"github.com/avelazco/social-api/internal/models"
)

// GroupDTO represents a group in API responses.
type GroupDTO struct {
	ID      uint64         `json:"id"`
	Name    string         `json:"name"`
	Members []UserGroupDTO `json:"members"`
}

// UserGroupDTO represents a membership link in API responses: the raw
// foreign-key pair, no nested expansion.
type UserGroupDTO struct {
	UserID  uint64 `json:"user_id"`
	GroupID uint64 `json:"group_id"`
}

// ToGroupDTO converts a Group model (with Members preloaded) to GroupDTO.
// Members is always allocated so a group without members marshals as [].
func ToGroupDTO(group models.Group) GroupDTO {
	dto := GroupDTO{
		ID:      group.ID,
		Name:    group.Name,
		Members: make([]UserGroupDTO, len(group.Members)),
	}
	for i, member := range group.Members {
		dto.Members[i] = ToUserGroupDTO(member)
	}
	return dto
}

// ToGroupDTOs converts a slice of groups.
func ToGroupDTOs(groups []models.Group) []GroupDTO {
	dtos := make([]GroupDTO, len(groups))
	for i, group := range groups {
		dtos[i] = ToGroupDTO(group)
	}
	return dtos
}

// ToUserGroupDTO converts a UserGroup model to UserGroupDTO.
func ToUserGroupDTO(membership models.UserGroup) UserGroupDTO {
	return UserGroupDTO{
		UserID:  membership.UserID,
		GroupID: membership.GroupID,
	}
}

// ToUserGroupDTOs converts a slice of membership links.
func ToUserGroupDTOs(memberships []models.UserGroup) []UserGroupDTO {
	dtos := make([]UserGroupDTO, len(memberships))
	for i, membership := range memberships {
		dtos[i] = ToUserGroupDTO(membership)
	}
	return dtos
}
