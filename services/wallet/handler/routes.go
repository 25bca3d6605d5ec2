package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/nairaxchange/internal/pkg/middleware"
	"github.com/piresc/nairaxchange/services/wallet"
	httpHandler "github.com/piresc/nairaxchange/services/wallet/handler/http"
)

// Handler combines all handlers for the wallet service
type Handler struct {
	walletHTTP *httpHandler.WalletHandler
}

// NewHandler creates a new combined handler
func NewHandler(walletUC wallet.WalletUC) *Handler {
	return &Handler{
		walletHTTP: httpHandler.NewWalletHandler(walletUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, mw *middleware.Middleware) {
	api := e.Group("/api")
	api.GET("/wallet/transactions", h.walletHTTP.ListTransactions, mw.Auth())
	api.GET("/wallet/deposit-address", h.walletHTTP.GetDepositAddress, mw.Auth())
	api.POST("/wallet/withdrawals", h.walletHTTP.RequestWithdrawal, mw.KYC()...)

	api.GET("/admin/withdrawals", h.walletHTTP.ListWithdrawals, mw.Admin()...)
	api.POST("/admin/withdrawals/:id/approve", h.walletHTTP.ApproveWithdrawal, mw.Admin()...)
	api.POST("/admin/withdrawals/:id/reject", h.walletHTTP.RejectWithdrawal, mw.Admin()...)
	api.POST("/admin/withdrawals/:id/reconcile", h.walletHTTP.ReconcileWithdrawal, mw.Admin()...)
	api.POST("/admin/deposits", h.walletHTTP.CreditDeposit, mw.Admin()...)
}
