package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/snapgram/backend/internal/models"
	"github.com/snapgram/backend/internal/repositories"
	"github.com/snapgram/backend/internal/services"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postService    *services.PostService
	userRepository repositories.UserRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService *services.PostService, userRepo repositories.UserRepository) *PostHandler {
	return &PostHandler{postService: postService, userRepository: userRepo}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts", h.GetPosts) // Feed, or one user's posts with ?user_id=
	g.GET("/posts/:id", h.GetPost)
}

// CreatePost creates a new post authored by the authenticated user
func (h *PostHandler) CreatePost(c echo.Context) error {
	uid := uidFromContext(c)
	if uid == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreatePostRequest
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

	post, err := h.postService.CreatePost(c.Request().Context(), req, *author)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

// GetPost retrieves a post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postService.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// GetPosts retrieves the feed (newest first) or, with a user_id query
// parameter, one user's posts
func (h *PostHandler) GetPosts(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		posts []models.Post
		err   error
	)
	if userID := c.QueryParam("user_id"); userID != "" {
		posts, err = h.postService.ListPostsByUser(ctx, userID)
	} else {
		posts, err = h.postService.ListPosts(ctx)
	}
	if err != nil {
		return httpError(err)
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return c.JSON(http.StatusOK, posts)
}
