package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/services/rates/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTestUC(t *testing.T) (*RateUC, *mocks.MockRateRepo) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRateRepo(ctrl)
	cfg := &models.Config{Rates: models.RatesConfig{DefaultPair: "USDT/NGN", CacheTTL: time.Minute}}

	uc, err := NewRateUC(cfg, repo)
	require.NoError(t, err)
	impl := uc.(*RateUC)
	impl.now = func() time.Time { return fixedNow }
	return impl, repo
}

func TestCurrent_CacheHit(t *testing.T) {
	uc, repo := newTestUC(t)
	cached := &models.ExchangeRate{Pair: "USDT/NGN", BuyRate: d("1540")}

	repo.EXPECT().GetCached(gomock.Any(), "USDT/NGN").Return(cached, nil)

	rate, err := uc.Current(context.Background(), "")
	require.NoError(t, err)
	assert.Same(t, cached, rate)
}

func TestCurrent_MissFillsCache(t *testing.T) {
	uc, repo := newTestUC(t)
	stored := &models.ExchangeRate{Pair: "USDT/NGN", BuyRate: d("1540")}

	gomock.InOrder(
		repo.EXPECT().GetCached(gomock.Any(), "USDT/NGN").Return(nil, apperrors.ErrRateNotFound),
		repo.EXPECT().GetLatest(gomock.Any(), "USDT/NGN").Return(stored, nil),
		repo.EXPECT().Cache(gomock.Any(), stored, time.Minute).Return(nil),
	)

	rate, err := uc.Current(context.Background(), " usdt/ngn ")
	require.NoError(t, err)
	assert.Equal(t, stored, rate)
}

func TestCurrent_CacheDownFallsBack(t *testing.T) {
	uc, repo := newTestUC(t)
	stored := &models.ExchangeRate{Pair: "USDT/NGN"}

	repo.EXPECT().GetCached(gomock.Any(), "USDT/NGN").Return(nil, errors.New("connection refused"))
	repo.EXPECT().GetLatest(gomock.Any(), "USDT/NGN").Return(stored, nil)
	repo.EXPECT().Cache(gomock.Any(), stored, time.Minute).Return(errors.New("connection refused"))

	rate, err := uc.Current(context.Background(), "USDT/NGN")
	require.NoError(t, err)
	assert.Equal(t, stored, rate)
}

func TestCurrent_NoRate(t *testing.T) {
	uc, repo := newTestUC(t)

	repo.EXPECT().GetCached(gomock.Any(), "USDT/GHS").Return(nil, apperrors.ErrRateNotFound)
	repo.EXPECT().GetLatest(gomock.Any(), "USDT/GHS").Return(nil, apperrors.ErrRateNotFound)

	_, err := uc.Current(context.Background(), "USDT/GHS")
	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)
}

func TestSet(t *testing.T) {
	uc, repo := newTestUC(t)
	admin := models.Actor{UserID: uuid.New(), IsAdmin: true}

	var inserted *models.ExchangeRate
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.ExchangeRate) error {
			inserted = r
			assert.Equal(t, "USDT/NGN", r.Pair)
			assert.Equal(t, "manual", r.Source)
			assert.Equal(t, admin.UserID, *r.UpdatedBy)
			assert.Equal(t, fixedNow, r.CreatedAt)
			return nil
		})
	repo.EXPECT().Cache(gomock.Any(), gomock.Any(), time.Minute).
		DoAndReturn(func(_ context.Context, r *models.ExchangeRate, _ time.Duration) error {
			assert.Same(t, inserted, r)
			return nil
		})

	rate, err := uc.Set(context.Background(), admin, &models.SetRateRequest{BuyRate: d("1540.5"), SellRate: d("1561")})
	require.NoError(t, err)
	assert.True(t, rate.BuyRate.Equal(d("1540.5")))
}

func TestSet_Errors(t *testing.T) {
	tests := []struct {
		name    string
		actor   models.Actor
		req     models.SetRateRequest
		wantErr error
	}{
		{"not admin", models.Actor{UserID: uuid.New()},
			models.SetRateRequest{BuyRate: d("1"), SellRate: d("1")}, apperrors.ErrAdminRequired},
		{"zero buy", models.Actor{UserID: uuid.New(), IsAdmin: true},
			models.SetRateRequest{SellRate: d("1560")}, apperrors.ErrValidation},
		{"negative sell", models.Actor{UserID: uuid.New(), IsAdmin: true},
			models.SetRateRequest{BuyRate: d("1540"), SellRate: d("-1")}, apperrors.ErrValidation},
		{"too precise", models.Actor{UserID: uuid.New(), IsAdmin: true},
			models.SetRateRequest{BuyRate: d("1540.123"), SellRate: d("1560")}, apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUC(t)
			req := tt.req
			_, err := uc.Set(context.Background(), tt.actor, &req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHistory_DefaultPair(t *testing.T) {
	uc, repo := newTestUC(t)

	repo.EXPECT().History(gomock.Any(), "USDT/NGN", models.Pagination{Limit: 5}).
		Return([]*models.ExchangeRate{{Pair: "USDT/NGN"}}, nil)

	list, err := uc.History(context.Background(), "", models.Pagination{Limit: 5})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
