package http

import (
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
	"github.com/piresc/nairaxchange/services/kyc/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, body string, actor *models.Actor) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = utils.NewRequestValidator()

	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if actor != nil {
		c.Set("user_id", actor.UserID)
		c.Set("is_admin", actor.IsAdmin)
	}
	return c, rec
}

func TestKYCHandler_Submit(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		actor      *models.Actor
		callsUC    bool
		ucErr      error
		wantStatus int
	}{
		{name: "created", body: `{"bvn":"22345678901","full_name":"Ada Obi","date_of_birth":"1994-06-01"}`,
			actor: &models.Actor{UserID: uuid.New()}, callsUC: true, wantStatus: http.StatusCreated},
		{name: "unauthenticated", body: `{}`, wantStatus: http.StatusUnauthorized},
		{name: "short bvn", body: `{"bvn":"1234","full_name":"Ada Obi","date_of_birth":"1994-06-01"}`,
			actor: &models.Actor{UserID: uuid.New()}, wantStatus: http.StatusBadRequest},
		{name: "bad date format", body: `{"bvn":"22345678901","full_name":"Ada Obi","date_of_birth":"01/06/1994"}`,
			actor: &models.Actor{UserID: uuid.New()}, wantStatus: http.StatusBadRequest},
		{name: "pending exists", body: `{"bvn":"22345678901","full_name":"Ada Obi","date_of_birth":"1994-06-01"}`,
			actor: &models.Actor{UserID: uuid.New()}, callsUC: true, ucErr: apperrors.ErrKYCPendingExists,
			wantStatus: http.StatusConflict},
		{name: "already verified", body: `{"bvn":"22345678901","full_name":"Ada Obi","date_of_birth":"1994-06-01"}`,
			actor: &models.Actor{UserID: uuid.New()}, callsUC: true, ucErr: apperrors.ErrKYCAlreadyVerified,
			wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockKYCUC(ctrl)
			if tt.callsUC {
				var result *models.KYCVerification
				if tt.ucErr == nil {
					result = &models.KYCVerification{ID: uuid.New(), Status: models.KYCPending}
				}
				mockUC.EXPECT().Submit(gomock.Any(), *tt.actor, gomock.Any()).Return(result, tt.ucErr)
			}
			handler := NewKYCHandler(mockUC)

			c, rec := newContext(http.MethodPost, tt.body, tt.actor)
			require.NoError(t, handler.Submit(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestKYCHandler_GetMine_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockKYCUC(ctrl)
	handler := NewKYCHandler(mockUC)
	actor := models.Actor{UserID: uuid.New()}

	mockUC.EXPECT().GetMine(gomock.Any(), actor).Return(nil, apperrors.ErrKYCNotFound)

	c, rec := newContext(http.MethodGet, "", &actor)
	require.NoError(t, handler.GetMine(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestKYCHandler_Approve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockKYCUC(ctrl)
	handler := NewKYCHandler(mockUC)
	admin := models.Actor{UserID: uuid.New(), IsAdmin: true}
	id := uuid.New()

	mockUC.EXPECT().Approve(gomock.Any(), admin, id).
		Return(&models.KYCVerification{ID: id, Status: models.KYCApproved}, nil)

	c, rec := newContext(http.MethodPost, "", &admin)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, handler.Approve(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"approved"`)
}

func TestKYCHandler_Reject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockKYCUC(ctrl)
	handler := NewKYCHandler(mockUC)
	admin := models.Actor{UserID: uuid.New(), IsAdmin: true}
	id := uuid.New()

	mockUC.EXPECT().Reject(gomock.Any(), admin, id, &models.RejectRequest{Reason: "blurry photo"}).
		Return(nil, apperrors.ErrConflict)

	c, rec := newContext(http.MethodPost, `{"reason":"blurry photo"}`, &admin)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, handler.Reject(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
