package handlers

import (
	"errors"
	"net/http"

	"github.com/avelazco/social-api/internal/dto"
	apierrors "github.com/avelazco/social-api/internal/errors"
	"github.com/avelazco/social-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PostHandler coordinates post-related HTTP handlers.
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// ListPosts returns all posts.
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.ListPosts()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":  "posts retrieved",
		"data": dto.ToPostDTOs(posts),
	})
}

// CreatePost creates a new post authored by an existing user.
func (h *PostHandler) CreatePost(c *gin.Context) {
	type CreatePostRequest struct {
		Title   string `json:"title" binding:"required"`
		Content string `json:"content" binding:"required"`
		UserID  uint64 `json:"user_id" binding:"required"`
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.MissingField(c, "title, content and user_id are required")
		return
	}

	post, err := h.postService.CreatePost(services.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
		UserID:  req.UserID,
	})
	if err != nil {
		if errors.Is(err, services.ErrPostAuthorUnknown) {
			apierrors.InvalidReference(c, "user_id does not reference an existing user")
			return
		}
		apierrors.InternalError(c, "Failed to create post")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":  "post created",
		"data": dto.ToPostDTO(*post),
	})
}
