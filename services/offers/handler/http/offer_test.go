package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/internal/utils"
	"github.com/piresc/nairaxchange/services/offers/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = utils.NewRequestValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != uuid.Nil {
		c.Set("user_id", userID)
		c.Set("is_admin", false)
	}
	return c, rec
}

func TestOfferHandler_CreateOffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockOfferUC(ctrl)
	handler := NewOfferHandler(mockUC)
	userID := uuid.New()

	mockUC.EXPECT().CreateOffer(gomock.Any(), models.Actor{UserID: userID}, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ models.Actor, req *models.CreateOfferRequest) (*models.Offer, error) {
			assert.Equal(t, models.OfferTypeSell, req.Type)
			assert.True(t, req.Rate.Equal(decimal.RequireFromString("1550.25")))
			return &models.Offer{ID: uuid.New(), Type: req.Type}, nil
		})

	body := `{"type":"sell","rate":"1550.25","min_amount":"10","max_amount":"100","available_amount":"100","payment_method":"bank_transfer"}`
	c, rec := newContext(http.MethodPost, "/api/offers", body, userID)

	require.NoError(t, handler.CreateOffer(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestOfferHandler_CreateOffer_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		user       uuid.UUID
		ucErr      error
		wantStatus int
	}{
		{name: "unauthenticated", body: `{}`, wantStatus: http.StatusUnauthorized},
		{name: "bad type", body: `{"type":"swap","payment_method":"x"}`, user: uuid.New(), wantStatus: http.StatusBadRequest},
		{name: "window out of range", body: `{"type":"buy","payment_method":"x","payment_window_minutes":500}`,
			user: uuid.New(), wantStatus: http.StatusBadRequest},
		{name: "insufficient balance", body: `{"type":"sell","payment_method":"x"}`, user: uuid.New(),
			ucErr: apperrors.ErrInsufficientBalance, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockOfferUC(ctrl)
			if tt.ucErr != nil {
				mockUC.EXPECT().CreateOffer(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.ucErr)
			}
			handler := NewOfferHandler(mockUC)

			c, rec := newContext(http.MethodPost, "/api/offers", tt.body, tt.user)
			require.NoError(t, handler.CreateOffer(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestOfferHandler_ListOffers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockOfferUC(ctrl)
	handler := NewOfferHandler(mockUC)

	mockUC.EXPECT().ListOffers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, f models.OfferFilter) ([]*models.Offer, error) {
			assert.Equal(t, models.OfferTypeBuy, f.Type)
			require.NotNil(t, f.Amount)
			assert.True(t, f.Amount.Equal(decimal.NewFromInt(75)))
			assert.Equal(t, "bank_transfer", f.PaymentMethod)
			assert.Equal(t, 5, f.Limit)
			return []*models.Offer{{ID: uuid.New()}}, nil
		})

	c, rec := newContext(http.MethodGet, "/api/offers?type=buy&amount=75&payment_method=bank_transfer&limit=5", "", uuid.Nil)
	require.NoError(t, handler.ListOffers(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out["data"], 1)
}

func TestOfferHandler_ListOffers_BadAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewOfferHandler(mocks.NewMockOfferUC(ctrl))
	c, rec := newContext(http.MethodGet, "/api/offers?amount=lots", "", uuid.Nil)

	require.NoError(t, handler.ListOffers(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOfferHandler_GetOffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockOfferUC(ctrl)
	handler := NewOfferHandler(mockUC)
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockUC.EXPECT().GetOffer(gomock.Any(), id).Return(&models.Offer{ID: id}, nil)
		c, rec := newContext(http.MethodGet, "/", "", uuid.Nil)
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		require.NoError(t, handler.GetOffer(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockUC.EXPECT().GetOffer(gomock.Any(), id).Return(nil, apperrors.ErrOfferNotFound)
		c, rec := newContext(http.MethodGet, "/", "", uuid.Nil)
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		require.NoError(t, handler.GetOffer(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		c, rec := newContext(http.MethodGet, "/", "", uuid.Nil)
		c.SetParamNames("id")
		c.SetParamValues("nope")

		require.NoError(t, handler.GetOffer(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOfferHandler_UpdateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockOfferUC(ctrl)
	handler := NewOfferHandler(mockUC)
	userID, id := uuid.New(), uuid.New()

	mockUC.EXPECT().UpdateOffer(gomock.Any(), models.Actor{UserID: userID}, id, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ models.Actor, _ uuid.UUID, req *models.UpdateOfferRequest) (*models.Offer, error) {
			require.NotNil(t, req.IsActive)
			assert.False(t, *req.IsActive)
			return &models.Offer{ID: id}, nil
		})
	c, rec := newContext(http.MethodPut, "/", `{"is_active":false}`, userID)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	require.NoError(t, handler.UpdateOffer(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	mockUC.EXPECT().DeleteOffer(gomock.Any(), models.Actor{UserID: userID}, id).Return(apperrors.ErrForbidden)
	c, rec = newContext(http.MethodDelete, "/", "", userID)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	require.NoError(t, handler.DeleteOffer(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestOfferHandler_ListMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockOfferUC(ctrl)
	handler := NewOfferHandler(mockUC)
	userID := uuid.New()

	mockUC.EXPECT().ListMine(gomock.Any(), models.Actor{UserID: userID}, models.Pagination{Limit: models.DefaultPageLimit}).
		Return([]*models.Offer{}, nil)

	c, rec := newContext(http.MethodGet, "/api/offers/mine", "", userID)
	require.NoError(t, handler.ListMine(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
