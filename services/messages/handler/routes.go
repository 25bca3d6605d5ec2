package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/nairaxchange/internal/pkg/middleware"
	"github.com/piresc/nairaxchange/services/messages"
	httpHandler "github.com/piresc/nairaxchange/services/messages/handler/http"
)

// Handler combines all handlers for the messages service
type Handler struct {
	messagesHTTP *httpHandler.MessageHandler
}

// NewHandler creates a new combined handler
func NewHandler(messageUC messages.MessageUC) *Handler {
	return &Handler{
		messagesHTTP: httpHandler.NewMessageHandler(messageUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, mw *middleware.Middleware) {
	api := e.Group("/api")
	api.GET("/trades/:id/messages", h.messagesHTTP.ListMessages, mw.Auth())
	api.POST("/trades/:id/messages", h.messagesHTTP.SendMessage, mw.Auth())
}
