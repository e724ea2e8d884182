package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// AttemptLimiter counts attempts per key inside a budget window.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// LoginRateLimit throttles a route per client IP. A nil limiter disables
// the middleware. When the limiter backend is unreachable the request is
// let through: losing throttling beats losing logins.
func LoginRateLimit(limiter AttemptLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if limiter == nil {
			return next
		}
		return func(c echo.Context) error {
			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("login rate limiter unavailable")
				return next(c)
			}
			if !allowed {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts")
			}
			return next(c)
		}
	}
}
