package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/snapgram/backend/internal/apperr"
)

// uidFromContext returns the authenticated UID set by the auth
// middleware, or "" when the request is unauthenticated.
func uidFromContext(c echo.Context) string {
	if uid, ok := c.Get("uid").(string); ok {
		return uid
	}
	return ""
}

// httpError maps the service error taxonomy onto HTTP statuses.
func httpError(err error) error {
	switch {
	case apperr.IsValidation(err), apperr.IsInvalidOperation(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case apperr.IsNotFound(err):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case apperr.IsAuth(err):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case apperr.IsTransient(err):
		return echo.NewHTTPError(http.StatusBadGateway, "Temporary storage failure, please retry")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
