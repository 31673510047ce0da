package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/avelazco/social-api/internal/dto"
	apierrors "github.com/avelazco/social-api/internal/errors"
	"github.com/avelazco/social-api/internal/services"
	"github.com/gin-gonic/gin"
)

// UserHandler coordinates user-related HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetUser returns a single user by ID.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, "User not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":  "user retrieved",
		"data": dto.ToUserDTO(*user),
	})
}

// ListUsers returns all users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":  "users retrieved",
		"data": dto.ToUserDTOs(users),
	})
}

// parseIDParam extracts the :id path parameter. It responds with a 400
// and returns false when the parameter is not a positive integer.
func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid id parameter")
		return 0, false
	}
	return id, true
}
