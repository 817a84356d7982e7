package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/snapgram/backend/internal/models"
	"github.com/snapgram/backend/internal/repositories"
	"github.com/snapgram/backend/internal/services"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	postService    *services.PostService
	userRepository repositories.UserRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(postService *services.PostService, userRepo repositories.UserRepository) *CommentHandler {
	return &CommentHandler{postService: postService, userRepository: userRepo}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:id/comments", h.AddComment)
}

// AddComment appends a comment to the post by the authenticated user
func (h *CommentHandler) AddComment(c echo.Context) error {
	uid := uidFromContext(c)
	if uid == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	author, err := h.userRepository.GetUser(c.Request().Context(), uid)
	if err != nil {
		return httpError(err)
	}

	comment, err := h.postService.AddComment(c.Request().Context(), c.Param("id"), req.Text, *author)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}
