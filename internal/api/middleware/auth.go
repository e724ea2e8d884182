package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/precify/pricing-api/internal/api/metrics"
	"github.com/precify/pricing-api/internal/core/domain"
	"github.com/precify/pricing-api/internal/core/ports"
)

// identityKey is the context key the verified identity is stored under.
const identityKey = "identity"

// Identity returns the authenticated identity attached by Auth, if any.
func Identity(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	return identity, ok
}

// Auth extracts the bearer token from the Authorization header, verifies it
// and attaches the decoded identity to the request context. All claim
// decoding happens inside the verifier, after signature validation.
func Auth(tokens ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := tokens.Verify(parts[1])
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrTokenExpired):
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				default:
					metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(identityKey, identity)
			return next(c)
		}
	}
}
