package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sociable/social-api/internal/middleware"
	"github.com/sociable/social-api/internal/service"
	"github.com/sociable/social-api/internal/types"
)

const maxImageSize = 5 << 20 // 5 MiB

// ProfileHandler exposes the self-profile endpoints.
type ProfileHandler struct {
	profileService service.IProfileService
	followService  service.IFollowService
	imageService   service.IImageService
}

func NewProfileHandler(profileService service.IProfileService, followService service.IFollowService, imageService service.IImageService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		followService:  followService,
		imageService:   imageService,
	}
}

// RegisterRoutes wires the authenticated self-profile endpoints.
func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.PATCH("", h.UpdateProfile)
		profile.POST("/image", h.UploadImage)
		profile.GET("/following", h.Following)
		profile.GET("/followers", h.Followers)
	}
}

// GetProfile returns the requester's merged profile+user view.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	view, err := h.profileService.GetSelf(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// UpdateProfile applies a partial edit to the requester's account and
// profile records as one atomic unit.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view, err := h.profileService.UpdateSelf(c.Request.Context(), userID, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// UploadImage stores a multipart image upload in S3 and records the
// resulting URL on the requester's profile.
func (h *ProfileHandler) UploadImage(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	if h.imageService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage not configured"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image must be at most 5 MiB"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		writeError(c, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.imageService.UploadProfileImage(c.Request.Context(), userID, contentType, file)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := h.profileService.SetProfileImage(c.Request.Context(), userID, url); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile_image": url})
}

// Following lists the profiles the requester follows.
func (h *ProfileHandler) Following(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	results, err := h.followService.Following(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// Followers lists the profiles following the requester.
func (h *ProfileHandler) Followers(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	results, err := h.followService.Followers(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
