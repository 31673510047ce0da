package dto

import (
	"github.com/avelazco/social-api/internal/models"
)

// PostDTO represents a post in API responses. The author appears as the
// bare nickname value, not a nested object.
type PostDTO struct {
	ID      uint64  `json:"id"`
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Author  *string `json:"author"`
}

// ToPostDTO converts a Post model (with Author preloaded) to PostDTO.
func ToPostDTO(post models.Post) PostDTO {
	return PostDTO{
		ID:      post.ID,
		Title:   post.Title,
		Content: post.Content,
		Author:  post.Author.Nickname,
	}
}

// ToPostDTOs converts a slice of posts.
func ToPostDTOs(posts []models.Post) []PostDTO {
	dtos := make([]PostDTO, len(posts))
	for i, post := range posts {
		dtos[i] = ToPostDTO(post)
	}
	return dtos
}
