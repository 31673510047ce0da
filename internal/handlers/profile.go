package handlers

import (
	"errors"
	"net/http"

	"github.com/avelazco/social-api/internal/dto"
	apierrors "github.com/avelazco/social-api/internal/errors"
	"github.com/avelazco/social-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ProfileHandler coordinates profile-related HTTP handlers.
type ProfileHandler struct {
	profileService *services.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile returns a single profile by ID.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(id)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			apierrors.NotFound(c, "Profile not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":  "profile retrieved",
		"data": dto.ToProfileDTO(*profile),
	})
}

// ListProfiles returns all profiles.
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profileService.ListProfiles()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch profiles")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":  "profiles retrieved",
		"data": dto.ToProfileDTOs(profiles),
	})
}

// CreateProfile creates a new profile for an existing user.
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	type CreateProfileRequest struct {
		Bio    string `json:"bio" binding:"required"`
		UserID uint64 `json:"user_id" binding:"required"`
	}

	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.MissingField(c, "bio and user_id are required")
		return
	}

	profile, err := h.profileService.CreateProfile(services.CreateProfileInput{
		Bio:    req.Bio,
		UserID: req.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProfileOwnerUnknown):
			apierrors.InvalidReference(c, "user_id does not reference an existing user")
		case errors.Is(err, services.ErrProfileAlreadyExists):
			apierrors.Conflict(c, "User already has a profile")
		default:
			apierrors.InternalError(c, "Failed to create profile")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":  "profile created",
		"data": dto.ToProfileDTO(*profile),
	})
}
