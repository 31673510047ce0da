package handlers

import (
	"errors"
	"net/http"

	"github.com/avelazco/social-api/internal/dto"
	apierrors "github.com/avelazco/social-api/internal/errors"
	"github.com/avelazco/social-api/internal/services"
	"github.com/gin-gonic/gin"
)

// GroupHandler coordinates group and membership HTTP handlers.
type GroupHandler struct {
	groupService *services.GroupService
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(groupService *services.GroupService) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
	}
}

// ListGroups returns all groups.
func (h *GroupHandler) ListGroups(c *gin.Context) {
	groups, err := h.groupService.ListGroups()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch groups")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":  "groups retrieved",
		"data": dto.ToGroupDTOs(groups),
	})
}

// CreateGroup creates a new group.
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	type CreateGroupRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.MissingField(c, "name is required")
		return
	}

	group, err := h.groupService.CreateGroup(services.CreateGroupInput{
		Name: req.Name,
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to create group")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":  "group created",
		"data": dto.ToGroupDTO(*group),
	})
}

// ListMemberships returns all user-group membership links.
func (h *GroupHandler) ListMemberships(c *gin.Context) {
	memberships, err := h.groupService.ListMemberships()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch memberships")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":  "memberships retrieved",
		"data": dto.ToUserGroupDTOs(memberships),
	})
}

// AddMembership links an existing user to an existing group.
func (h *GroupHandler) AddMembership(c *gin.Context) {
	type AddMembershipRequest struct {
		UserID  uint64 `json:"user_id" binding:"required"`
		GroupID uint64 `json:"group_id" binding:"required"`
	}

	var req AddMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.MissingField(c, "user_id and group_id are required")
		return
	}

	membership, err := h.groupService.AddMembership(services.AddMembershipInput{
		UserID:  req.UserID,
		GroupID: req.GroupID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberUserUnknown):
			apierrors.InvalidReference(c, "user_id does not reference an existing user")
		case errors.Is(err, services.ErrMemberGroupUnknown):
			apierrors.InvalidReference(c, "group_id does not reference an existing group")
		case errors.Is(err, services.ErrAlreadyMember):
			apierrors.Conflict(c, "User is already a member of this group")
		default:
			apierrors.InternalError(c, "Failed to add membership")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":  "membership created",
		"data": dto.ToUserGroupDTO(*membership),
	})
}
