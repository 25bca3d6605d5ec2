package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nairaxchange/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"
)

// ValidateAPIKey accepts requests whose X-API-Key matches one of the allowed
// callers in keys. Callers with an empty configured key are never accepted.
func ValidateAPIKey(keys map[string]string, allowedCallers ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			for _, caller := range allowedCallers {
				expected := keys[caller]
				if expected != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) == 1 {
					c.Set("api_caller", caller)
					return next(c)
				}
			}

			return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
		}
	}
}
