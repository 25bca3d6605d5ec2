package middleware

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/internal/utils"
)

// AccountLookup loads the current state of an account
type AccountLookup interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// AccountGuard enforces account flags that may change after a token is issued,
// so they are always read from the database rather than from the token.
type AccountGuard struct {
	lookup AccountLookup
}

func NewAccountGuard(lookup AccountLookup) *AccountGuard {
	return &AccountGuard{lookup: lookup}
}

const accountKey = "account"

func (g *AccountGuard) load(c echo.Context) (*models.User, error) {
	if user, ok := c.Get(accountKey).(*models.User); ok {
		return user, nil
	}

	id, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return nil, apperrors.ErrUnauthorized
	}
	user, err := g.lookup.GetUserByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}
	c.Set(accountKey, user)
	c.Set("is_admin", user.IsAdmin)
	return user, nil
}

// LoadAccount rejects deleted and disabled accounts and replaces the token's
// role claim with the stored admin flag
func (g *AccountGuard) LoadAccount(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := g.load(c); err != nil {
			return utils.HandleError(c, err)
		}
		return next(c)
	}
}

// RequireAdmin allows only active admin accounts
func (g *AccountGuard) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := g.load(c)
		if err != nil {
			return utils.HandleError(c, err)
		}
		if !user.IsAdmin {
			return utils.HandleError(c, apperrors.ErrAdminRequired)
		}
		return next(c)
	}
}

// RequireKYC allows only active accounts with verified identity
func (g *AccountGuard) RequireKYC(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := g.load(c)
		if err != nil {
			return utils.HandleError(c, err)
		}
		if !user.KYCVerified {
			return utils.HandleError(c, apperrors.ErrKYCRequired)
		}
		return next(c)
	}
}
