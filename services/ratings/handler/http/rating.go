package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	nrpkg "github.com/piresc/nairaxchange/internal/pkg/newrelic"
	"github.com/piresc/nairaxchange/internal/utils"
	"github.com/piresc/nairaxchange/services/ratings"
)

// RatingHandler handles HTTP requests for ratings
type RatingHandler struct {
	ratingUC ratings.RatingUC
}

// NewRatingHandler creates a new rating HTTP handler
func NewRatingHandler(ratingUC ratings.RatingUC) *RatingHandler {
	return &RatingHandler{
		ratingUC: ratingUC,
	}
}

// RateTrade leaves feedback on a completed trade's counterparty
func (h *RatingHandler) RateTrade(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ratings.Rate")

	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	tradeID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.RateTradeRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	rating, err := h.ratingUC.RateTrade(c.Request().Context(), actor, tradeID, &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Rating submitted", rating)
}

// ListForUser returns a user's ratings and average
func (h *RatingHandler) ListForUser(c echo.Context) error {
	userID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, err)
	}

	out, err := h.ratingUC.ListForUser(c.Request().Context(), userID, utils.ParsePagination(c))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ratings retrieved", out)
}
