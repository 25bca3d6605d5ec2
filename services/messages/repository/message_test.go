package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/services/messages/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestGetTrade(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := repository.NewMessageRepository(&models.Config{}, db)

	t.Run("found", func(t *testing.T) {
		id, buyer, seller := uuid.New(), uuid.New(), uuid.New()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, buyer_id, seller_id, status FROM trades")).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id", "buyer_id", "seller_id", "status"}).
				AddRow(id.String(), buyer.String(), seller.String(), "disputed"))

		trade, err := repo.GetTrade(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, buyer, trade.BuyerID)
		assert.Equal(t, models.TradeStatusDisputed, trade.Status)
	})

	t.Run("missing", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(regexp.QuoteMeta("FROM trades")).
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetTrade(context.Background(), id)
		assert.ErrorIs(t, err, apperrors.ErrTradeNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMessage(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := repository.NewMessageRepository(&models.Config{}, db)

	msg := &models.Message{
		ID:        uuid.New(),
		TradeID:   uuid.New(),
		SenderID:  uuid.New(),
		Content:   "sent the transfer",
		CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO messages")).
		WithArgs(msg.ID, msg.TradeID, msg.SenderID, msg.Content, msg.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateMessage(context.Background(), msg))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMessages(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := repository.NewMessageRepository(&models.Config{}, db)

	tradeID, sender := uuid.New(), uuid.New()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "trade_id", "sender_id", "sender_username", "content", "is_system", "created_at"}).
		AddRow(uuid.NewString(), tradeID.String(), nil, "", "Trade opened", true, now).
		AddRow(uuid.NewString(), tradeID.String(), sender.String(), "ada", "hello", false, now.Add(time.Minute))

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY m.created_at ASC")).
		WithArgs(tradeID, models.DefaultPageLimit, 0).
		WillReturnRows(rows)

	list, err := repo.ListMessages(context.Background(), tradeID, models.Pagination{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].IsSystem)
	assert.Equal(t, uuid.Nil, list[0].SenderID)
	assert.Equal(t, sender, list[1].SenderID)
	assert.Equal(t, "ada", list[1].SenderUsername)
	assert.NoError(t, mock.ExpectationsWereMet())
}
