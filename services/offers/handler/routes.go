package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/nairaxchange/internal/pkg/middleware"
	"github.com/piresc/nairaxchange/services/offers"
	httpHandler "github.com/piresc/nairaxchange/services/offers/handler/http"
)

// Handler combines all handlers for the offers service
type Handler struct {
	offersHTTP *httpHandler.OfferHandler
}

// NewHandler creates a new combined handler
func NewHandler(offerUC offers.OfferUC) *Handler {
	return &Handler{
		offersHTTP: httpHandler.NewOfferHandler(offerUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, mw *middleware.Middleware) {
	api := e.Group("/api")
	api.GET("/offers", h.offersHTTP.ListOffers)
	api.GET("/offers/mine", h.offersHTTP.ListMine, mw.Auth())
	api.GET("/offers/:id", h.offersHTTP.GetOffer)
	api.POST("/offers", h.offersHTTP.CreateOffer, mw.KYC()...)
	api.PUT("/offers/:id", h.offersHTTP.UpdateOffer, mw.Auth())
	api.DELETE("/offers/:id", h.offersHTTP.DeleteOffer, mw.Auth())
}
