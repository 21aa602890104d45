package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fencewise/field-service/internal/core/domain"
)

// userContextKey is the echo context key under which the authenticated user
// is stored.
const userContextKey = "user"

// TokenVerifier resolves a bearer token to its subject user id.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// UserLoader fetches a user by id.
type UserLoader interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// Auth validates the bearer token, loads the user it names, and injects the
// user into the request context. The active flag is deliberately not checked
// here: suspension only bites at login, so a suspended user's still-valid
// token continues to authenticate until it expires.
func Auth(verifier TokenVerifier, users UserLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			userID, err := verifier.VerifyToken(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// UserFromContext returns the authenticated user injected by Auth, or nil
// when the middleware did not run.
func UserFromContext(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}
