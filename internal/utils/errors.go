package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/logger"
)

var errorStatus = []struct {
	status int
	errs   []error
}{
	{http.StatusNotFound, []error{
		apperrors.ErrNotFound, apperrors.ErrUserNotFound, apperrors.ErrOfferNotFound,
		apperrors.ErrTradeNotFound, apperrors.ErrTransactionNotFound, apperrors.ErrKYCNotFound,
		apperrors.ErrRateNotFound,
	}},
	{http.StatusUnauthorized, []error{
		apperrors.ErrUnauthorized, apperrors.ErrInvalidCredentials,
		apperrors.ErrTwoFactorRequired, apperrors.ErrInvalidTwoFactor,
	}},
	{http.StatusForbidden, []error{
		apperrors.ErrForbidden, apperrors.ErrAccountDisabled,
		apperrors.ErrKYCRequired, apperrors.ErrAdminRequired,
	}},
	{http.StatusConflict, []error{
		apperrors.ErrConflict, apperrors.ErrEmailTaken, apperrors.ErrUsernameTaken,
		apperrors.ErrInvalidTransition, apperrors.ErrTradeExpired, apperrors.ErrOfferUnavailable,
		apperrors.ErrAlreadyRated, apperrors.ErrKYCPendingExists, apperrors.ErrKYCAlreadyVerified,
		apperrors.ErrDuplicateReference, apperrors.ErrWithdrawalNotPending, apperrors.ErrTwoFactorEnabled,
		apperrors.ErrNotProcessing,
	}},
	{http.StatusBadRequest, []error{
		apperrors.ErrValidation, apperrors.ErrInvalidAmount, apperrors.ErrInvalidAddress,
		apperrors.ErrSelfTrade, apperrors.ErrInsufficientBalance, apperrors.ErrBankDetailsMissing,
		apperrors.ErrBelowMinimum, apperrors.ErrTradeNotCompleted, apperrors.ErrTwoFactorNotPending,
		apperrors.ErrTwoFactorDisabled,
	}},
	{http.StatusBadGateway, []error{apperrors.ErrPayoutFailed}},
	{http.StatusGatewayTimeout, []error{apperrors.ErrPayoutUnconfirmed}},
}

// StatusFor maps a domain error to its HTTP status
func StatusFor(err error) int {
	for _, group := range errorStatus {
		for _, target := range group.errs {
			if errors.Is(err, target) {
				return group.status
			}
		}
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}

// HandleError writes the error envelope for err. Unknown errors are logged and
// reported as a generic 500 so internals never leak to clients.
func HandleError(c echo.Context, err error) error {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		logger.ErrorCtx(c.Request().Context(), "Request failed",
			logger.String("method", c.Request().Method),
			logger.String("path", c.Path()),
			logger.Err(err))
		return InternalServerErrorResponse(c, "")
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		if msg, ok := he.Message.(string); ok {
			return ErrorResponseHandler(c, status, msg)
		}
	}
	return ErrorResponseHandler(c, status, err.Error())
}
