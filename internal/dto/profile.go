package dto

import (
	"github.com/avelazco/social-api/internal/models"
)

// ProfileDTO represents a profile in API responses. The owning user is
// reduced to its nickname.
type ProfileDTO struct {
	ID   uint64         `json:"id"`
	Bio  *string        `json:"bio"`
	User ProfileUserDTO `json:"user"`
}

// ProfileUserDTO is the owning-user shape embedded in a profile response.
type ProfileUserDTO struct {
	Nickname *string `json:"nickname"`
}

// ToProfileDTO converts a Profile model (with User preloaded) to ProfileDTO.
func ToProfileDTO(profile models.Profile) ProfileDTO {
	return ProfileDTO{
		ID:  profile.ID,
		Bio: profile.Bio,
		User: ProfileUserDTO{
			Nickname: profile.User.Nickname,
		},
	}
}

// ToProfileDTOs converts a slice of profiles.
func ToProfileDTOs(profiles []models.Profile) []ProfileDTO {
	dtos := make([]ProfileDTO, len(profiles))
	for i, profile := range profiles {
		dtos[i] = ToProfileDTO(profile)
	}
	return dtos
}
