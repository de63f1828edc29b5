package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sociable/social-api/internal/middleware"
	"github.com/sociable/social-api/internal/service"
	"github.com/sociable/social-api/internal/types"
)

// SearchHandler exposes the profile listing, detail and follow endpoints.
type SearchHandler struct {
	profileService service.IProfileService
	followService  service.IFollowService
	rateLimiter    *middleware.RateLimiter
}

func NewSearchHandler(profileService service.IProfileService, followService service.IFollowService, rateLimiter *middleware.RateLimiter) *SearchHandler {
	return &SearchHandler{
		profileService: profileService,
		followService:  followService,
		rateLimiter:    rateLimiter,
	}
}

// RegisterRoutes wires the authenticated search endpoints. The follow
// toggle gets the rate limiter when one is configured.
func (h *SearchHandler) RegisterRoutes(router *gin.RouterGroup) {
	search := router.Group("/search")
	{
		search.GET("", h.List)
		search.GET("/:id", h.Detail)

		follow := search.Group("/:id")
		if h.rateLimiter != nil {
			follow.Use(h.rateLimiter.Middleware())
		}
		follow.POST("/follow", h.Follow)
	}
}

// List returns the filtered, paginated profile summaries, excluding the
// requester's own profile.
func (h *SearchHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	filters := types.SearchFilters{
		User:      c.Query("user"),
		Username:  c.Query("username"),
		FirstName: c.Query("first_name"),
		LastName:  c.Query("last_name"),
	}
	page, err := parsePositiveInt(c.Query("page"), 1)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a positive integer"})
		return
	}
	pageSize, err := parsePositiveInt(c.Query("page_size"), 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page_size must be a positive integer"})
		return
	}

	result, err := h.profileService.Search(c.Request.Context(), userID, filters, page, pageSize)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Detail returns the merged profile view with the computed following flag.
func (h *SearchHandler) Detail(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profileID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}

	detail, err := h.profileService.Detail(c.Request.Context(), userID, profileID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Follow applies the follow/unfollow action from the request body against
// the target profile.
func (h *SearchHandler) Follow(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profileID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}

	var req types.FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "action must be \"follow\" or \"unfollow\""})
		return
	}

	if err := h.followService.SetFollowing(c.Request.Context(), userID, profileID, req.Action); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": req.Action + "ed"})
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func parsePositiveInt(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(value)
	if err != nil || v <= 0 {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}
