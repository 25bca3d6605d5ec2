package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewRequestValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/", "")

	err := SuccessResponse(c, http.StatusCreated, "Resource created", map[string]interface{}{"id": "123"})
	require.NoError(t, err)

	var response Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, response.Success)
	assert.Equal(t, "Resource created", response.Message)
	assert.Equal(t, map[string]interface{}{"id": "123"}, response.Data)
}

func TestErrorResponses_DefaultMessages(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(echo.Context, string) error
		status   int
		expected string
	}{
		{"unauthorized", UnauthorizedResponse, http.StatusUnauthorized, "Unauthorized"},
		{"forbidden", ForbiddenResponse, http.StatusForbidden, "Forbidden"},
		{"not found", NotFoundResponse, http.StatusNotFound, "Resource not found"},
		{"conflict", ConflictResponse, http.StatusConflict, "Conflict"},
		{"internal", InternalServerErrorResponse, http.StatusInternalServerError, "Internal server error"},
		{"unavailable", ServiceUnavailableResponse, http.StatusServiceUnavailable, "Service unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(http.MethodGet, "/", "")

			require.NoError(t, tt.fn(c, ""))

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, tt.status, rec.Code)
			assert.False(t, response.Success)
			assert.Equal(t, tt.expected, response.Error)
			assert.Equal(t, tt.status, response.Code)
		})
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"wrapped not found", fmt.Errorf("get trade: %w", apperrors.ErrTradeNotFound), http.StatusNotFound, "get trade: trade not found"},
		{"invalid transition", apperrors.ErrInvalidTransition, http.StatusConflict, "invalid trade status transition"},
		{"insufficient balance", apperrors.ErrInsufficientBalance, http.StatusBadRequest, "insufficient balance"},
		{"kyc required", apperrors.ErrKYCRequired, http.StatusForbidden, "kyc verification required"},
		{"two factor", apperrors.ErrTwoFactorRequired, http.StatusUnauthorized, "two-factor code required"},
		{"echo http error", echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"), http.StatusMethodNotAllowed, "nope"},
		{"unknown error hides details", errors.New("pq: connection refused"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(http.MethodGet, "/", "")

			require.NoError(t, HandleError(c, tt.err))

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, response.Error)
		})
	}
}

func TestBindAndValidate(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		c, _ := newContext(http.MethodPost, "/", `{"bvn":"22345678901","full_name":"Ada Obi","date_of_birth":"1990-04-01"}`)
		var req models.SubmitKYCRequest

		require.NoError(t, BindAndValidate(c, &req))
		assert.Equal(t, "Ada Obi", req.FullName)
	})

	t.Run("validation failure names the field", func(t *testing.T) {
		c, _ := newContext(http.MethodPost, "/", `{"bvn":"123","full_name":"Ada Obi","date_of_birth":"01/04/1990"}`)
		var req models.SubmitKYCRequest

		err := BindAndValidate(c, &req)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Contains(t, err.Error(), "bvn must satisfy len=11")
		assert.Contains(t, err.Error(), "date_of_birth failed datetime validation")
	})

	t.Run("malformed json", func(t *testing.T) {
		c, _ := newContext(http.MethodPost, "/", `{"bvn":`)
		var req models.SubmitKYCRequest

		assert.ErrorIs(t, BindAndValidate(c, &req), apperrors.ErrValidation)
	})
}

func TestParseHelpers(t *testing.T) {
	t.Run("uuid param", func(t *testing.T) {
		c, _ := newContext(http.MethodGet, "/", "")
		id := uuid.New()
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		got, err := ParseUUIDParam(c, "id")
		require.NoError(t, err)
		assert.Equal(t, id, got)

		c.SetParamValues("not-a-uuid")
		_, err = ParseUUIDParam(c, "id")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("pagination clamps", func(t *testing.T) {
		c, _ := newContext(http.MethodGet, "/?limit=500&offset=-3", "")

		p := ParsePagination(c)
		assert.Equal(t, models.MaxPageLimit, p.Limit)
		assert.Equal(t, 0, p.Offset)
	})

	t.Run("decimal query", func(t *testing.T) {
		c, _ := newContext(http.MethodGet, "/?amount=12.5&bad=x", "")

		d, err := ParseDecimalQuery(c, "amount")
		require.NoError(t, err)
		assert.Equal(t, "12.5", d.String())

		d, err = ParseDecimalQuery(c, "missing")
		assert.NoError(t, err)
		assert.Nil(t, d)

		_, err = ParseDecimalQuery(c, "bad")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("actor from context", func(t *testing.T) {
		c, _ := newContext(http.MethodGet, "/", "")
		_, err := ActorFromContext(c)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

		id := uuid.New()
		c.Set("user_id", id)
		c.Set("is_admin", true)
		actor, err := ActorFromContext(c)
		require.NoError(t, err)
		assert.Equal(t, models.Actor{UserID: id, IsAdmin: true}, actor)
	})
}
