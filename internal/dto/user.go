package dto

import (
	"github.com/avelazco/social-api/internal/models"
)

// UserDTO represents a user in API responses. The password column is
// never part of this shape.
type UserDTO struct {
	ID       uint64             `json:"id"`
	Email    string             `json:"email"`
	Nickname *string            `json:"nickname"`
	Age      *int               `json:"age"`
	Posts    []PostSummaryDTO   `json:"posts"`
	Profile  *ProfileSummaryDTO `json:"profile"`
	Groups   []UserGroupDTO     `json:"groups"`
}

// PostSummaryDTO is the reduced post shape embedded in a user response.
type PostSummaryDTO struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ProfileSummaryDTO is the reduced profile shape embedded in a user response.
type ProfileSummaryDTO struct {
	Bio *string `json:"bio"`
}

// ToUserDTO converts a User model (with relations preloaded) to UserDTO.
//
// Posts stays nil when the user has no posts, so it marshals as null.
// Groups is always allocated, so an empty membership list marshals as [].
// The asymmetry is deliberate; it is the contract of the original API.
func ToUserDTO(user models.User) UserDTO {
	dto := UserDTO{
		ID:       user.ID,
		Email:    user.Email,
		Nickname: user.Nickname,
		Age:      user.Age,
		Groups:   make([]UserGroupDTO, len(user.Memberships)),
	}

	for i, membership := range user.Memberships {
		dto.Groups[i] = ToUserGroupDTO(membership)
	}

	if len(user.Posts) > 0 {
		dto.Posts = make([]PostSummaryDTO, len(user.Posts))
		for i, post := range user.Posts {
			dto.Posts[i] = PostSummaryDTO{
				Title:   post.Title,
				Content: post.Content,
			}
		}
	}

	if user.Profile != nil {
		dto.Profile = &ProfileSummaryDTO{Bio: user.Profile.Bio}
	}

	return dto
}

// ToUserDTOs converts a slice of users.
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}
