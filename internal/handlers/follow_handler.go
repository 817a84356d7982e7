package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/snapgram/backend/internal/models"
	"github.com/snapgram/backend/internal/services"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	relationshipService *services.RelationshipService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(relationshipService *services.RelationshipService) *FollowHandler {
	return &FollowHandler{relationshipService: relationshipService}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow", h.FollowUser)
	g.DELETE("/users/:id/follow", h.UnfollowUser)
	g.GET("/users/:id/follow/status", h.GetFollowStatus)
	g.GET("/users/:id/follow/stats", h.GetFollowStats)
	g.GET("/users/:id/followers", h.GetFollowers)
	g.GET("/users/:id/following", h.GetFollowing)
}

// FollowUser makes the authenticated user follow the target user
func (h *FollowHandler) FollowUser(c echo.Context) error {
	uid := uidFromContext(c)
	if uid == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	targetID := c.Param("id")

	if err := h.relationshipService.Follow(c.Request().Context(), uid, targetID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": true}})
}

// UnfollowUser makes the authenticated user unfollow the target user
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	uid := uidFromContext(c)
	if uid == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	targetID := c.Param("id")

	if err := h.relationshipService.Unfollow(c.Request().Context(), uid, targetID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": false}})
}

// GetFollowStatus reports whether the authenticated user follows the
// target user
func (h *FollowHandler) GetFollowStatus(c echo.Context) error {
	uid := uidFromContext(c)
	if uid == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	following := h.relationshipService.IsFollowing(c.Request().Context(), uid, c.Param("id"))
	return c.JSON(http.StatusOK, echo.Map{"following": following})
}

// GetFollowStats returns the target user's follower and following
// counts
func (h *FollowHandler) GetFollowStats(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Param("id")
	return c.JSON(http.StatusOK, echo.Map{
		"user_id":         userID,
		"followers_count": h.relationshipService.FollowersCount(ctx, userID),
		"following_count": h.relationshipService.FollowingCount(ctx, userID),
	})
}

// GetFollowers lists the target user's followers as full profiles
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	followers := h.relationshipService.ListFollowers(c.Request().Context(), c.Param("id"))
	if followers == nil {
		followers = []models.User{}
	}
	return c.JSON(http.StatusOK, followers)
}

// GetFollowing lists the users the target user follows as full
// profiles
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	following := h.relationshipService.ListFollowing(c.Request().Context(), c.Param("id"))
	if following == nil {
		following = []models.User{}
	}
	return c.JSON(http.StatusOK, following)
}
