package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	nrpkg "github.com/piresc/nairaxchange/internal/pkg/newrelic"
	"github.com/piresc/nairaxchange/internal/utils"
	"github.com/piresc/nairaxchange/services/users"
)

// AuthHandler handles registration, login and two-factor enrollment
type AuthHandler struct {
	userUC users.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC users.UserUC) *AuthHandler {
	return &AuthHandler{
		userUC: userUC,
	}
}

// Register creates an account
func (h *AuthHandler) Register(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Auth.Register")

	var req models.RegisterRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	resp, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Account created", resp)
}

// Login exchanges credentials for a token
func (h *AuthHandler) Login(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Auth.Login")

	var req models.LoginRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	resp, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// SetupTwoFactor starts authenticator enrollment
func (h *AuthHandler) SetupTwoFactor(c echo.Context) error {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	setup, err := h.userUC.SetupTwoFactor(c.Request().Context(), actor.UserID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Scan the secret with your authenticator app", setup)
}

// EnableTwoFactor confirms enrollment
func (h *AuthHandler) EnableTwoFactor(c echo.Context) error {
	return h.withCode(c, "Two-factor authentication enabled", h.userUC.EnableTwoFactor)
}

// DisableTwoFactor turns two-factor off
func (h *AuthHandler) DisableTwoFactor(c echo.Context) error {
	return h.withCode(c, "Two-factor authentication disabled", h.userUC.DisableTwoFactor)
}

func (h *AuthHandler) withCode(c echo.Context, message string, fn func(ctx context.Context, id uuid.UUID, code string) error) error {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.TwoFactorCodeRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err)
	}

	if err := fn(c.Request().Context(), actor.UserID, req.Code); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, message, nil)
}
