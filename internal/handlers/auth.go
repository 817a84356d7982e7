package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/snapgram/backend/internal/models"
	"github.com/snapgram/backend/internal/services"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterAuthRoutes registers the unprotected authentication routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", h.SignUp)
	g.POST("/signin", h.SignIn)
	g.POST("/reset-password", h.ResetPassword)
}

// RegisterSessionRoutes registers auth routes that require a session
func (h *AuthHandler) RegisterSessionRoutes(g *echo.Group) {
	g.POST("/auth/signout", h.SignOut)
}

// SignUp creates a provider account and the matching profile document
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req models.SignUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.SignUp(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, user)
}

// SignIn exchanges a provider ID token for a local session token
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req models.SignInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := h.authService.SignIn(c.Request().Context(), req.IDToken)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token, "user": user})
}

// SignOut revokes the authenticated user's provider sessions
func (h *AuthHandler) SignOut(c echo.Context) error {
	uid := uidFromContext(c)
	if uid == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if err := h.authService.SignOut(c.Request().Context(), uid); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ResetPassword returns a password reset link for the given email
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	link, err := h.authService.ResetPassword(c.Request().Context(), req.Email)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"reset_link": link})
}
