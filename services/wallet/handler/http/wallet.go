package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	nrpkg "github.com/piresc/nairaxchange/internal/pkg/newrelic"
	"github.com/piresc/nairaxchange/internal/utils"
	"github.com/piresc/nairaxchange/services/wallet"
)

// WalletHandler handles HTTP requests for balances, deposits and withdrawals
type WalletHandler struct {
	walletUC wallet.WalletUC
}

// NewWalletHandler creates a new wallet HTTP handler
func NewWalletHandler(walletUC wallet.WalletUC) *WalletHandler {
	return &WalletHandler{
		walletUC: walletUC,
	}
}

// ListTransactions returns the caller's ledger
func (h *WalletHandler) ListTransactions(c echo.Context) error {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	filter := models.TransactionFilter{
		Type:       models.TransactionType(c.QueryParam("type")),
		Currency:   models.Currency(c.QueryParam("currency")),
		Pagination: utils.ParsePagination(c),
	}
	list, err := h.walletUC.ListTransactions(c.Request().Context(), actor, filter)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved", list)
}

// GetDepositAddress returns the caller's TRON deposit address
func (h *WalletHandler) GetDepositAddress(c echo.Context) error {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	addr, err := h.walletUC.GetDepositAddress(c.Request().Context(), actor)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Deposit address retrieved", addr)
}

// RequestWithdrawal queues a withdrawal for admin review
func (h *WalletHandler) RequestWithdrawal(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Wallet.RequestWithdrawal")

	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.WithdrawalRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	entry, err := h.walletUC.RequestWithdrawal(c.Request().Context(), actor, &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Withdrawal requested", entry)
}

// ListWithdrawals returns the admin review queue, or the processing rows
// awaiting reconciliation with ?status=processing
func (h *WalletHandler) ListWithdrawals(c echo.Context) error {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	filter := models.WithdrawalFilter{
		Status:     models.TransactionStatus(c.QueryParam("status")),
		Pagination: utils.ParsePagination(c),
	}
	list, err := h.walletUC.ListWithdrawals(c.Request().Context(), actor, filter)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Withdrawals retrieved", list)
}

// ApproveWithdrawal pays out a withdrawal
func (h *WalletHandler) ApproveWithdrawal(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Wallet.ApproveWithdrawal")

	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, err)
	}

	entry, err := h.walletUC.ApproveWithdrawal(c.Request().Context(), actor, id)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Withdrawal approved", entry)
}

// ReconcileWithdrawal settles a withdrawal whose payout outcome was unknown
func (h *WalletHandler) ReconcileWithdrawal(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Wallet.ReconcileWithdrawal")

	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.ReconcileWithdrawalRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	entry, err := h.walletUC.ReconcileWithdrawal(c.Request().Context(), actor, id, &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Withdrawal reconciled", entry)
}

// RejectWithdrawal refunds a withdrawal
func (h *WalletHandler) RejectWithdrawal(c echo.Context) error {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.RejectRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	entry, err := h.walletUC.RejectWithdrawal(c.Request().Context(), actor, id, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Withdrawal rejected", entry)
}

// CreditDeposit credits a confirmed deposit to a user
func (h *WalletHandler) CreditDeposit(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Wallet.CreditDeposit")

	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.DepositCreditRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	entry, err := h.walletUC.CreditDeposit(c.Request().Context(), actor, &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Deposit credited", entry)
}
