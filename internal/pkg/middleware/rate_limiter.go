package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nairaxchange/internal/pkg/constants"
	"github.com/piresc/nairaxchange/internal/pkg/database"
	"github.com/piresc/nairaxchange/internal/pkg/logger"
	"github.com/piresc/nairaxchange/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	Redis  *database.RedisClient
	Limit  int
	Period time.Duration
}

// RateLimiterMiddleware applies a fixed-window limit per route and caller.
// Redis failures let the request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if userID := c.Get("user_id"); userID != nil {
				identifier = fmt.Sprintf("%v", userID)
			}
			key := fmt.Sprintf(constants.KeyRateLimit, c.Path(), identifier)

			count, ttl, err := config.Redis.IncrWindow(c.Request().Context(), key, config.Period)
			if err != nil {
				logger.WarnCtx(c.Request().Context(), "Rate limiter unavailable", logger.Err(err))
				return next(c)
			}

			remaining := config.Limit - int(count)
			if remaining < 0 {
				remaining = 0
			}
			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))

			if int(count) > config.Limit {
				h.Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}
