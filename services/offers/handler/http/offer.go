package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	nrpkg "github.com/piresc/nairaxchange/internal/pkg/newrelic"
	"github.com/piresc/nairaxchange/internal/utils"
	"github.com/piresc/nairaxchange/services/offers"
)

// OfferHandler handles HTTP requests for the offer book
type OfferHandler struct {
	offerUC offers.OfferUC
}

// NewOfferHandler creates a new offer HTTP handler
func NewOfferHandler(offerUC offers.OfferUC) *OfferHandler {
	return &OfferHandler{
		offerUC: offerUC,
	}
}

// CreateOffer posts a new offer for the caller
func (h *OfferHandler) CreateOffer(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Offers.Create")

	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.CreateOfferRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	offer, err := h.offerUC.CreateOffer(c.Request().Context(), actor, &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Offer created", offer)
}

// ListOffers returns the public offer book
func (h *OfferHandler) ListOffers(c echo.Context) error {
	amount, err := utils.ParseDecimalQuery(c, "amount")
	if err != nil {
		return utils.HandleError(c, err)
	}

	filter := models.OfferFilter{
		Type:          models.OfferType(c.QueryParam("type")),
		Amount:        amount,
		PaymentMethod: c.QueryParam("payment_method"),
		Pagination:    utils.ParsePagination(c),
	}
	list, err := h.offerUC.ListOffers(c.Request().Context(), filter)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Offers retrieved", list)
}

// GetOffer returns one offer
func (h *OfferHandler) GetOffer(c echo.Context) error {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, err)
	}

	offer, err := h.offerUC.GetOffer(c.Request().Context(), id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Offer retrieved", offer)
}

// ListMine returns the caller's offers, including paused ones
func (h *OfferHandler) ListMine(c echo.Context) error {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	list, err := h.offerUC.ListMine(c.Request().Context(), actor, utils.ParsePagination(c))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Offers retrieved", list)
}

// UpdateOffer edits the caller's offer
func (h *OfferHandler) UpdateOffer(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Offers.Update")

	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.UpdateOfferRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	offer, err := h.offerUC.UpdateOffer(c.Request().Context(), actor, id, &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Offer updated", offer)
}

// DeleteOffer deactivates an offer
func (h *OfferHandler) DeleteOffer(c echo.Context) error {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, err)
	}

	if err := h.offerUC.DeleteOffer(c.Request().Context(), actor, id); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Offer deactivated", nil)
}
