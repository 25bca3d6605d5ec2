package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nairaxchange/internal/pkg/middleware"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	nrpkg "github.com/piresc/nairaxchange/internal/pkg/newrelic"
	"github.com/piresc/nairaxchange/internal/utils"
	"github.com/piresc/nairaxchange/services/trades"
)

// TradeHandler handles HTTP requests for trades
type TradeHandler struct {
	tradeUC trades.TradeUC
}

// NewTradeHandler creates a new trade HTTP handler
func NewTradeHandler(tradeUC trades.TradeUC) *TradeHandler {
	return &TradeHandler{
		tradeUC: tradeUC,
	}
}

// CreateTrade takes an offer
func (h *TradeHandler) CreateTrade(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Trades.Create")

	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.CreateTradeRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	trade, err := h.tradeUC.CreateTrade(c.Request().Context(), actor, &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Trade created", trade)
}

// ListTrades lists the caller's trades, optionally filtered by status
func (h *TradeHandler) ListTrades(c echo.Context) error {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	filter := models.TradeFilter{
		Status:     models.TradeStatus(c.QueryParam("status")),
		Pagination: utils.ParsePagination(c),
	}
	list, err := h.tradeUC.ListTrades(c.Request().Context(), actor, filter)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// GetTrade returns a single trade
func (h *TradeHandler) GetTrade(c echo.Context) error {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, err)
	}

	trade, err := h.tradeUC.GetTrade(c.Request().Context(), actor, id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", trade)
}

// AcceptTrade is called by the maker on a pending trade
func (h *TradeHandler) AcceptTrade(c echo.Context) error {
	return h.act(c, "Trades.Accept", "Trade accepted", func(actor models.Actor) (*models.Trade, error) {
		id, err := utils.ParseUUIDParam(c, "id")
		if err != nil {
			return nil, err
		}
		return h.tradeUC.AcceptTrade(c.Request().Context(), actor, id)
	})
}

// MarkPaid is called by the buyer once the naira transfer is sent
func (h *TradeHandler) MarkPaid(c echo.Context) error {
	return h.act(c, "Trades.MarkPaid", "Payment marked as sent", func(actor models.Actor) (*models.Trade, error) {
		id, err := utils.ParseUUIDParam(c, "id")
		if err != nil {
			return nil, err
		}
		var req models.MarkPaidRequest
		if err := utils.BindAndValidate(c, &req); err != nil {
			return nil, err
		}
		return h.tradeUC.MarkPaid(c.Request().Context(), actor, id, &req)
	})
}

// ReleaseTrade is called by the seller after confirming the naira arrived
func (h *TradeHandler) ReleaseTrade(c echo.Context) error {
	return h.act(c, "Trades.Release", "USDT released", func(actor models.Actor) (*models.Trade, error) {
		id, err := utils.ParseUUIDParam(c, "id")
		if err != nil {
			return nil, err
		}
		return h.tradeUC.ReleaseTrade(c.Request().Context(), actor, id)
	})
}

// CancelTrade cancels a trade that has not been paid
func (h *TradeHandler) CancelTrade(c echo.Context) error {
	return h.act(c, "Trades.Cancel", "Trade cancelled", func(actor models.Actor) (*models.Trade, error) {
		id, err := utils.ParseUUIDParam(c, "id")
		if err != nil {
			return nil, err
		}
		var req models.CancelTradeRequest
		if err := utils.BindAndValidate(c, &req); err != nil {
			return nil, err
		}
		return h.tradeUC.CancelTrade(c.Request().Context(), actor, id, &req)
	})
}

// DisputeTrade escalates a trade
func (h *TradeHandler) DisputeTrade(c echo.Context) error {
	return h.act(c, "Trades.Dispute", "Dispute opened", func(actor models.Actor) (*models.Trade, error) {
		id, err := utils.ParseUUIDParam(c, "id")
		if err != nil {
			return nil, err
		}
		var req models.DisputeRequest
		if err := utils.BindAndValidate(c, &req); err != nil {
			return nil, err
		}
		return h.tradeUC.DisputeTrade(c.Request().Context(), actor, id, &req)
	})
}

// ListDisputed lists disputed trades for admins
func (h *TradeHandler) ListDisputed(c echo.Context) error {
	list, err := h.tradeUC.ListDisputed(c.Request().Context(), utils.ParsePagination(c))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// ResolveDispute lets an admin settle a disputed trade
func (h *TradeHandler) ResolveDispute(c echo.Context) error {
	return h.act(c, "Trades.ResolveDispute", "Dispute resolved", func(actor models.Actor) (*models.Trade, error) {
		id, err := utils.ParseUUIDParam(c, "id")
		if err != nil {
			return nil, err
		}
		var req models.ResolveDisputeRequest
		if err := utils.BindAndValidate(c, &req); err != nil {
			return nil, err
		}
		return h.tradeUC.ResolveDispute(c.Request().Context(), actor, id, &req)
	})
}

// ExpireOverdue runs one expiry pass on demand for an external scheduler
func (h *TradeHandler) ExpireOverdue(c echo.Context) error {
	n, err := h.tradeUC.ExpireOverdue(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Expiry pass finished", map[string]int{"expired": n})
}

func (h *TradeHandler) act(c echo.Context, name, message string, fn func(models.Actor) (*models.Trade, error)) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, name)
	middleware.SetTradeID(c, c.Param("id"))

	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	trade, err := fn(actor)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, message, trade)
}
