package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC gates a route on the authenticated identity's role. An empty role
// list means any authenticated identity passes. Without an identity on the
// context the request is unauthenticated, not forbidden.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := Identity(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			if len(allowed) > 0 {
				if _, ok := allowed[identity.Role]; !ok {
					return echo.NewHTTPError(http.StatusForbidden, "forbidden")
				}
			}

			return next(c)
		}
	}
}
