package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole enforces role-based access control declaratively per route,
// reading the user loaded by Auth. Routes without a RequireRole are open to
// any authenticated user.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := UserFromContext(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if _, ok := allowed[user.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
