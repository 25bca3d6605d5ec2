package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/nairaxchange/internal/pkg/middleware"
	"github.com/piresc/nairaxchange/services/kyc"
	httpHandler "github.com/piresc/nairaxchange/services/kyc/handler/http"
)

// Handler combines all handlers for the KYC service
type Handler struct {
	kycHTTP *httpHandler.KYCHandler
}

// NewHandler creates a new combined handler
func NewHandler(kycUC kyc.KYCUC) *Handler {
	return &Handler{
		kycHTTP: httpHandler.NewKYCHandler(kycUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, mw *middleware.Middleware) {
	api := e.Group("/api")
	api.POST("/kyc", h.kycHTTP.Submit, mw.Auth())
	api.GET("/kyc", h.kycHTTP.GetMine, mw.Auth())

	api.GET("/admin/kyc", h.kycHTTP.ListPending, mw.Admin()...)
	api.POST("/admin/kyc/:id/approve", h.kycHTTP.Approve, mw.Admin()...)
	api.POST("/admin/kyc/:id/reject", h.kycHTTP.Reject, mw.Admin()...)
}
