package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/snapgram/backend/internal/services"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	postService *services.PostService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(postService *services.PostService) *LikeHandler {
	return &LikeHandler{postService: postService}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:id/like", h.ToggleLike)
}

// ToggleLike likes the post when the user has not liked it yet and
// unlikes it otherwise
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	uid := uidFromContext(c)
	if uid == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("id")

	if err := h.postService.ToggleLike(c.Request().Context(), postID, uid); err != nil {
		return httpError(err)
	}

	post, err := h.postService.GetPost(c.Request().Context(), postID)
	if err != nil {
		return httpError(err)
	}

	liked := false
	for _, id := range post.Likes {
		if id == uid {
			liked = true
			break
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "liked": liked, "likes_count": len(post.Likes)})
}
