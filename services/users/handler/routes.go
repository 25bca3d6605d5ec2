package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/nairaxchange/internal/pkg/middleware"
	"github.com/piresc/nairaxchange/services/users"
	httpHandler "github.com/piresc/nairaxchange/services/users/handler/http"
)

// Handler combines all handlers for the users service
type Handler struct {
	authHTTP *httpHandler.AuthHandler
	userHTTP *httpHandler.UserHandler
}

// NewHandler creates a new combined handler
func NewHandler(userUC users.UserUC) *Handler {
	return &Handler{
		authHTTP: httpHandler.NewAuthHandler(userUC),
		userHTTP: httpHandler.NewUserHandler(userUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, mw *middleware.Middleware) {
	api := e.Group("/api")

	// Public auth routes are rate limited per client IP
	api.POST("/auth/register", h.authHTTP.Register, mw.RateLimit())
	api.POST("/auth/login", h.authHTTP.Login, mw.RateLimit())

	api.POST("/auth/2fa/setup", h.authHTTP.SetupTwoFactor, mw.Auth())
	api.POST("/auth/2fa/enable", h.authHTTP.EnableTwoFactor, mw.Auth())
	api.POST("/auth/2fa/disable", h.authHTTP.DisableTwoFactor, mw.Auth())

	api.GET("/users/me", h.userHTTP.GetMe, mw.Auth())
	api.PUT("/users/me", h.userHTTP.UpdateMe, mw.Auth())
	api.GET("/users/:id", h.userHTTP.GetPublicProfile)

	api.GET("/admin/users", h.userHTTP.ListUsers, mw.Admin()...)
	api.PUT("/admin/users/:id/admin", h.userHTTP.SetAdmin, mw.Admin()...)
	api.PUT("/admin/users/:id/active", h.userHTTP.SetActive, mw.Admin()...)
	api.POST("/admin/users/:id/adjust", h.userHTTP.AdjustBalance, mw.Admin()...)
}
