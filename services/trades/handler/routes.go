package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/nairaxchange/internal/pkg/middleware"
	"github.com/piresc/nairaxchange/services/trades"
	httpHandler "github.com/piresc/nairaxchange/services/trades/handler/http"
)

// Handler combines all handlers for the trades service
type Handler struct {
	tradesHTTP *httpHandler.TradeHandler
}

// NewHandler creates a new combined handler
func NewHandler(tradeUC trades.TradeUC) *Handler {
	return &Handler{
		tradesHTTP: httpHandler.NewTradeHandler(tradeUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, mw *middleware.Middleware) {
	api := e.Group("/api")
	api.POST("/trades", h.tradesHTTP.CreateTrade, mw.KYC()...)
	api.GET("/trades", h.tradesHTTP.ListTrades, mw.Auth())
	api.GET("/trades/:id", h.tradesHTTP.GetTrade, mw.Auth())
	api.POST("/trades/:id/accept", h.tradesHTTP.AcceptTrade, mw.Auth())
	api.POST("/trades/:id/paid", h.tradesHTTP.MarkPaid, mw.Auth())
	api.POST("/trades/:id/release", h.tradesHTTP.ReleaseTrade, mw.Auth())
	api.POST("/trades/:id/cancel", h.tradesHTTP.CancelTrade, mw.Auth())
	api.POST("/trades/:id/dispute", h.tradesHTTP.DisputeTrade, mw.Auth())

	api.GET("/admin/trades/disputed", h.tradesHTTP.ListDisputed, mw.Admin()...)
	api.POST("/admin/trades/:id/resolve", h.tradesHTTP.ResolveDispute, mw.Admin()...)

	// Internal routes for an external scheduler (API key required)
	e.POST("/internal/trades/expire", h.tradesHTTP.ExpireOverdue, mw.APIKeyHandler("scheduler"))
}
