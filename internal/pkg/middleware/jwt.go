package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/nairaxchange/internal/pkg/jwt"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/internal/utils"
)

// JWTAuthMiddleware validates the bearer token and stores the caller in the context
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			scheme, tokenString, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set("user_id", claims.UserID)
			c.Set("user_role", claims.Role)
			c.Set("is_admin", claims.Role == jwtpkg.RoleAdmin)
			AddAttribute(c, "user.id", claims.UserID.String())

			return next(c)
		}
	}
}
