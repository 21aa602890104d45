package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fencewise/field-service/internal/api/middleware"
	"github.com/fencewise/field-service/internal/core/domain"
)

// currentUser extracts the user injected by the Auth middleware. Its presence
// proves the middleware ran; a missing user means the route was registered
// without the guard, so fail closed with 401.
func currentUser(c echo.Context) (*domain.User, error) {
	user := middleware.UserFromContext(c)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
