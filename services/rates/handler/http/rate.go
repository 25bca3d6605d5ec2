package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	nrpkg "github.com/piresc/nairaxchange/internal/pkg/newrelic"
	"github.com/piresc/nairaxchange/internal/utils"
	"github.com/piresc/nairaxchange/services/rates"
)

// RateHandler handles HTTP requests for reference exchange rates
type RateHandler struct {
	rateUC rates.RateUC
}

// NewRateHandler creates a new rate HTTP handler
func NewRateHandler(rateUC rates.RateUC) *RateHandler {
	return &RateHandler{
		rateUC: rateUC,
	}
}

// Current returns the latest rate for the pair query parameter
func (h *RateHandler) Current(c echo.Context) error {
	rate, err := h.rateUC.Current(c.Request().Context(), c.QueryParam("pair"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Exchange rate retrieved", rate)
}

// History returns past rates
func (h *RateHandler) History(c echo.Context) error {
	list, err := h.rateUC.History(c.Request().Context(), c.QueryParam("pair"), utils.ParsePagination(c))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Exchange rate history retrieved", list)
}

// Set publishes a new rate
func (h *RateHandler) Set(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rates.Set")

	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.SetRateRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	rate, err := h.rateUC.Set(c.Request().Context(), actor, &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Exchange rate updated", rate)
}
