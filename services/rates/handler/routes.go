package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/nairaxchange/internal/pkg/middleware"
	"github.com/piresc/nairaxchange/services/rates"
	httpHandler "github.com/piresc/nairaxchange/services/rates/handler/http"
)

// Handler combines all handlers for the rates service
type Handler struct {
	ratesHTTP *httpHandler.RateHandler
}

// NewHandler creates a new combined handler
func NewHandler(rateUC rates.RateUC) *Handler {
	return &Handler{
		ratesHTTP: httpHandler.NewRateHandler(rateUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, mw *middleware.Middleware) {
	api := e.Group("/api")
	api.GET("/rates", h.ratesHTTP.Current)
	api.GET("/rates/history", h.ratesHTTP.History)
	api.PUT("/admin/rates", h.ratesHTTP.Set, mw.Admin()...)
}
