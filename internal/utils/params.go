package utils

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// ParseUUIDParam reads a path parameter as a UUID
func ParseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s", apperrors.ErrValidation, name)
	}
	return id, nil
}

// ParsePagination reads limit/offset query parameters
func ParsePagination(c echo.Context) models.Pagination {
	var p models.Pagination
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		p.Limit = v
	}
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil {
		p.Offset = v
	}
	return p.Normalize()
}

// ParseDecimalQuery reads an optional decimal query parameter
func ParseDecimalQuery(c echo.Context, name string) (*decimal.Decimal, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s", apperrors.ErrValidation, name)
	}
	return &d, nil
}

// ActorFromContext returns the caller set by the JWT middleware
func ActorFromContext(c echo.Context) (models.Actor, error) {
	id, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return models.Actor{}, apperrors.ErrUnauthorized
	}
	isAdmin, _ := c.Get("is_admin").(bool)
	return models.Actor{UserID: id, IsAdmin: isAdmin}, nil
}
