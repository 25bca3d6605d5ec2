package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	nrpkg "github.com/piresc/nairaxchange/internal/pkg/newrelic"
	"github.com/piresc/nairaxchange/internal/utils"
	"github.com/piresc/nairaxchange/services/kyc"
)

// KYCHandler handles HTTP requests for identity verification
type KYCHandler struct {
	kycUC kyc.KYCUC
}

// NewKYCHandler creates a new KYC HTTP handler
func NewKYCHandler(kycUC kyc.KYCUC) *KYCHandler {
	return &KYCHandler{
		kycUC: kycUC,
	}
}

// Submit files an identity submission
func (h *KYCHandler) Submit(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "KYC.Submit")

	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.SubmitKYCRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	v, err := h.kycUC.Submit(c.Request().Context(), actor, &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "KYC submitted", v)
}

// GetMine returns the caller's latest submission
func (h *KYCHandler) GetMine(c echo.Context) error {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	v, err := h.kycUC.GetMine(c.Request().Context(), actor)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "KYC status retrieved", v)
}

// ListPending returns the admin review queue
func (h *KYCHandler) ListPending(c echo.Context) error {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	list, err := h.kycUC.ListPending(c.Request().Context(), actor, utils.ParsePagination(c))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Pending submissions retrieved", list)
}

// Approve verifies a submission
func (h *KYCHandler) Approve(c echo.Context) error {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, err)
	}

	v, err := h.kycUC.Approve(c.Request().Context(), actor, id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "KYC approved", v)
}

// Reject declines a submission
func (h *KYCHandler) Reject(c echo.Context) error {
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

	v, err := h.kycUC.Reject(c.Request().Context(), actor, id, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "KYC rejected", v)
}
