package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/database"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/services/rates"
	"github.com/piresc/nairaxchange/services/rates/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	rateCols = []string{"id", "pair", "buy_rate", "sell_rate", "source", "updated_by", "created_at"}
	now      = time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)
)

func setup(t *testing.T) (rates.RateRepo, sqlmock.Sqlmock, *miniredis.Miniredis) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	rc := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { rc.Close() })

	return repository.NewRateRepository(&models.Config{}, db, rc), mock, mr
}

func TestGetLatest(t *testing.T) {
	repo, mock, _ := setup(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM exchange_rates")).
		WithArgs("USDT/NGN").
		WillReturnRows(sqlmock.NewRows(rateCols).
			AddRow(uuid.NewString(), "USDT/NGN", "1540.00", "1560.50", "manual", nil, now))

	rate, err := repo.GetLatest(context.Background(), "USDT/NGN")
	require.NoError(t, err)
	assert.True(t, rate.SellRate.Equal(decimal.RequireFromString("1560.5")))
	assert.Nil(t, rate.UpdatedBy)

	mock.ExpectQuery(regexp.QuoteMeta("FROM exchange_rates")).WillReturnError(sql.ErrNoRows)
	_, err = repo.GetLatest(context.Background(), "USDT/GHS")
	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert(t *testing.T) {
	repo, mock, _ := setup(t)
	admin := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO exchange_rates")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Insert(context.Background(), &models.ExchangeRate{
		ID: uuid.New(), Pair: "USDT/NGN", BuyRate: decimal.NewFromInt(1540), SellRate: decimal.NewFromInt(1560),
		Source: "manual", UpdatedBy: &admin, CreatedAt: now,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistory(t *testing.T) {
	repo, mock, _ := setup(t)

	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $2 OFFSET $3")).
		WithArgs("USDT/NGN", 2, 0).
		WillReturnRows(sqlmock.NewRows(rateCols).
			AddRow(uuid.NewString(), "USDT/NGN", "1540", "1560", "manual", nil, now).
			AddRow(uuid.NewString(), "USDT/NGN", "1530", "1550", "manual", nil, now.Add(-time.Hour)))

	list, err := repo.History(context.Background(), "USDT/NGN", models.Pagination{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheRoundTrip(t *testing.T) {
	repo, _, mr := setup(t)
	ctx := context.Background()

	_, err := repo.GetCached(ctx, "USDT/NGN")
	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)

	rate := &models.ExchangeRate{
		ID: uuid.New(), Pair: "USDT/NGN", BuyRate: decimal.RequireFromString("1540.25"),
		SellRate: decimal.RequireFromString("1560"), Source: "manual", CreatedAt: now,
	}
	require.NoError(t, repo.Cache(ctx, rate, time.Minute))
	assert.True(t, mr.Exists("rates:current:USDT/NGN"))

	got, err := repo.GetCached(ctx, "USDT/NGN")
	require.NoError(t, err)
	assert.Equal(t, rate.ID, got.ID)
	assert.True(t, got.BuyRate.Equal(rate.BuyRate))

	mr.FastForward(2 * time.Minute)
	_, err = repo.GetCached(ctx, "USDT/NGN")
	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)
}

func TestGetCached_Corrupt(t *testing.T) {
	repo, _, mr := setup(t)
	require.NoError(t, mr.Set("rates:current:USDT/NGN", "{not json"))

	_, err := repo.GetCached(context.Background(), "USDT/NGN")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrRateNotFound)
}
