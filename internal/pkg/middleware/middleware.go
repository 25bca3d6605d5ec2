package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/nairaxchange/internal/pkg/database"
	"github.com/piresc/nairaxchange/internal/pkg/models"
)

// Middleware bundles the route-level middleware handed to each service's
// route registration
type Middleware struct {
	config *models.Config
	guard  *AccountGuard
	redis  *database.RedisClient
}

func NewMiddleware(config *models.Config, lookup AccountLookup, redis *database.RedisClient) *Middleware {
	return &Middleware{
		config: config,
		guard:  NewAccountGuard(lookup),
		redis:  redis,
	}
}

// Auth requires a valid bearer token for an active account
func (m *Middleware) Auth() echo.MiddlewareFunc {
	jwt := JWTAuthMiddleware(m.config.JWT)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return jwt(m.guard.LoadAccount(next))
	}
}

// KYC requires a token and a verified account
func (m *Middleware) KYC() []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{m.Auth(), m.guard.RequireKYC}
}

// Admin requires a token and an active admin account
func (m *Middleware) Admin() []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{m.Auth(), m.guard.RequireAdmin}
}

// RateLimit limits unauthenticated auth endpoints per client IP. Without
// redis it is a no-op.
func (m *Middleware) RateLimit() echo.MiddlewareFunc {
	if m.redis == nil || m.config.RateLimit.Limit <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return RateLimiterMiddleware(RateLimiterConfig{
		Redis:  m.redis,
		Limit:  m.config.RateLimit.Limit,
		Period: m.config.RateLimit.Period,
	})
}

// APIKeyHandler guards internal endpoints for the named callers
func (m *Middleware) APIKeyHandler(callers ...string) echo.MiddlewareFunc {
	return ValidateAPIKey(m.config.APIKey.Keys, callers...)
}
