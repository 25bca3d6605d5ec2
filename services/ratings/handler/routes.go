package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/nairaxchange/internal/pkg/middleware"
	"github.com/piresc/nairaxchange/services/ratings"
	httpHandler "github.com/piresc/nairaxchange/services/ratings/handler/http"
)

// Handler combines all handlers for the ratings service
type Handler struct {
	ratingsHTTP *httpHandler.RatingHandler
}

// NewHandler creates a new combined handler
func NewHandler(ratingUC ratings.RatingUC) *Handler {
	return &Handler{
		ratingsHTTP: httpHandler.NewRatingHandler(ratingUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, mw *middleware.Middleware) {
	api := e.Group("/api")
	api.POST("/trades/:id/rating", h.ratingsHTTP.RateTrade, mw.Auth())
	api.GET("/users/:id/ratings", h.ratingsHTTP.ListForUser)
}
