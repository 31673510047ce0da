package services

import (
	"errors"
	"fmt"

	"github.com/avelazco/social-api/internal/models"
	"github.com/avelazco/social-api/internal/repository"
)

var (
	ErrPostAuthorUnknown = errors.New("post user_id does not reference an existing user")
)

// PostService provides business logic for post operations.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// ListPosts returns all posts with authors loaded.
func (s *PostService) ListPosts() ([]models.Post, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// CreatePostInput represents parameters to create a new post.
type CreatePostInput struct {
	Title   string
	Content string
	UserID  uint64
}

// CreatePost verifies the author exists, persists the post and returns
// it with the author loaded for serialization.
func (s *PostService) CreatePost(input CreatePostInput) (*models.Post, error) {
	exists, err := s.userRepo.Exists(input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}
	if !exists {
		return nil, ErrPostAuthorUnknown
	}

	post := &models.Post{
		Title:   input.Title,
		Content: input.Content,
		UserID:  input.UserID,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	created, err := s.postRepo.FindByID(post.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload post: %w", err)
	}

	return created, nil
}
