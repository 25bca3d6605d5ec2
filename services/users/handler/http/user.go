package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/internal/utils"
	"github.com/piresc/nairaxchange/services/users"
)

// UserHandler handles profile and admin user requests
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// GetMe returns the caller's account
func (h *UserHandler) GetMe(c echo.Context) error {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	user, err := h.userUC.GetMe(c.Request().Context(), actor.UserID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", user)
}

// UpdateMe changes the caller's profile
func (h *UserHandler) UpdateMe(c echo.Context) error {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.UpdateProfileRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), actor.UserID, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile updated", user)
}

// GetPublicProfile returns another user's public profile
func (h *UserHandler) GetPublicProfile(c echo.Context) error {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, err)
	}

	profile, err := h.userUC.GetPublicProfile(c.Request().Context(), id)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", profile)
}

// ListUsers lists accounts for admins
func (h *UserHandler) ListUsers(c echo.Context) error {
	filter := models.UserFilter{
		Search:     c.QueryParam("search"),
		Pagination: utils.ParsePagination(c),
	}
	list, err := h.userUC.ListUsers(c.Request().Context(), filter)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// SetAdmin grants or revokes admin rights
func (h *UserHandler) SetAdmin(c echo.Context) error {
	return h.setFlag(c, "Admin flag updated", h.userUC.SetAdmin)
}

// SetActive enables or disables an account
func (h *UserHandler) SetActive(c echo.Context) error {
	return h.setFlag(c, "Account status updated", h.userUC.SetActive)
}

func (h *UserHandler) setFlag(c echo.Context, message string, fn flagSetter) error {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.SetFlagRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	user, err := fn(c.Request().Context(), actor, id, req.Value)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, message, user)
}

// AdjustBalance credits or debits a user's balance
func (h *UserHandler) AdjustBalance(c echo.Context) error {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.AdjustBalanceRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	snapshot, err := h.userUC.AdjustBalance(c.Request().Context(), actor, id, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Balance adjusted", snapshot)
}

type flagSetter func(ctx context.Context, actor models.Actor, id uuid.UUID, value bool) (*models.User, error)
