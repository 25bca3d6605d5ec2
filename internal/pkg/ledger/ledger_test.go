package ledger

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")

	userID, tradeID := uuid.New(), uuid.New()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	entry := TradeEntry(userID, tradeID, models.TransactionTradeEscrow, decimal.RequireFromString("50"), now)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs(sqlmock.AnyArg(), userID, &tradeID, models.TransactionTradeEscrow, models.CurrencyUSDT,
			sqlmock.AnyArg(), models.TransactionCompleted, "", "", "", "", now, now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, Record(context.Background(), db, entry))
	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.Equal(t, now, entry.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalances(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")

	seller, buyer := uuid.New(), uuid.New()
	rows := sqlmock.NewRows([]string{"id", "naira_balance", "usdt_balance", "escrow_usdt"}).
		AddRow(seller.String(), "0", "90", "10").
		AddRow(buyer.String(), "5000", "9.9", "0")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, naira_balance, usdt_balance, escrow_usdt")).
		WillReturnRows(rows)

	out, err := Balances(context.Background(), db, seller, buyer)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, seller, out[0].UserID)
	assert.True(t, out[0].EscrowUSDT.Equal(decimal.NewFromInt(10)))
	assert.NoError(t, mock.ExpectationsWereMet())

	none, err := Balances(context.Background(), db)
	assert.NoError(t, err)
	assert.Nil(t, none)
}

func TestAdjust(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")

	userID := uuid.New()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	snapshotCols := []string{"id", "naira_balance", "usdt_balance", "escrow_usdt"}

	t.Run("credit", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET usdt_balance = usdt_balance + $1")).
			WithArgs("25", now, userID).
			WillReturnRows(sqlmock.NewRows(snapshotCols).AddRow(userID.String(), "0", "125", "0"))

		snap, err := Adjust(context.Background(), db, userID, models.CurrencyUSDT, decimal.NewFromInt(25), now)
		require.NoError(t, err)
		assert.True(t, snap.USDTBalance.Equal(decimal.NewFromInt(125)))
	})

	t.Run("overdraft", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET naira_balance = naira_balance + $1")).
			WithArgs("-5000", now, userID).
			WillReturnRows(sqlmock.NewRows(snapshotCols))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		_, err := Adjust(context.Background(), db, userID, models.CurrencyNGN, decimal.NewFromInt(-5000), now)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientBalance)
	})

	t.Run("unknown user", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET")).
			WillReturnRows(sqlmock.NewRows(snapshotCols))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		_, err := Adjust(context.Background(), db, userID, models.CurrencyNGN, decimal.NewFromInt(1), now)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("unsupported currency", func(t *testing.T) {
		_, err := Adjust(context.Background(), db, userID, "EUR", decimal.NewFromInt(1), now)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
