package repository_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/services/users/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userCols = []string{
	"id", "email", "username", "password_hash", "full_name", "phone", "is_admin", "kyc_verified",
	"is_active", "naira_balance", "usdt_balance", "escrow_usdt", "bank_name", "bank_account_number",
	"bank_account_name", "tron_address", "deposit_address", "totp_secret", "totp_enabled", "created_at", "updated_at",
}

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func userRow(id uuid.UUID, email string) []driver.Value {
	now := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	return []driver.Value{
		id.String(), email, "ada", "$2a$10$hash", "Ada Obi", "+2348012345678", false, true,
		true, "15000.00", "42.5", "10", "GTBank", "0123456789",
		"Ada Obi", "", "", "", false, now, now,
	}
}

func TestCreateUser(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := repository.NewUserRepository(&models.Config{}, db, nil)

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
			WillReturnResult(sqlmock.NewResult(0, 1))

		user := &models.User{Email: "ada@example.com", Username: "ada", PasswordHash: "x", IsActive: true}
		require.NoError(t, repo.CreateUser(context.Background(), user))
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		err := repo.CreateUser(context.Background(), &models.User{Email: "ada@example.com", Username: "ada2"})
		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	})

	t.Run("duplicate username", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

		err := repo.CreateUser(context.Background(), &models.User{Email: "b@example.com", Username: "ada"})
		assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := repository.NewUserRepository(&models.Config{}, db, nil)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("ada@example.com").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(userRow(id, "ada@example.com")...))

	user, err := repo.GetUserByEmail(context.Background(), "  Ada@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.True(t, user.USDTBalance.Equal(decimal.RequireFromString("42.5")))
	assert.True(t, user.KYCVerified)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := repository.NewUserRepository(&models.Config{}, db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := repository.NewUserRepository(&models.Config{}, db, nil)

	id := uuid.New()
	bank := "Access Bank"
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET")).
		WithArgs(id, nil, nil, bank, nil, nil, nil, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(userRow(id, "ada@example.com")...))

	_, err := repo.UpdateProfile(context.Background(), id, &models.UpdateProfileRequest{BankName: &bank})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetActive(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := repository.NewUserRepository(&models.Config{}, db, nil)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET is_active = $1")).
		WithArgs(false, sqlmock.AnyArg(), id).
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(userRow(id, "ada@example.com")...))

	_, err := repo.SetActive(context.Background(), id, false)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET is_admin = $1")).
		WillReturnError(sql.ErrNoRows)
	_, err = repo.SetAdmin(context.Background(), uuid.New(), true)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsers(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := repository.NewUserRepository(&models.Config{}, db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs("ada", models.MaxPageLimit, 0).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(userRow(uuid.New(), "ada@example.com")...).
			AddRow(userRow(uuid.New(), "ada2@example.com")...))

	list, err := repo.ListUsers(context.Background(), models.UserFilter{
		Search:     " ada ",
		Pagination: models.Pagination{Limit: 1000},
	})
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustBalance(t *testing.T) {
	now := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	userID, adminID := uuid.New(), uuid.New()

	t.Run("credit writes ledger row", func(t *testing.T) {
		db, mock := setupMockDB(t)
		defer db.Close()
		repo := repository.NewUserRepository(&models.Config{}, db, nil)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET naira_balance = naira_balance + $1")).
			WithArgs("2500", now, userID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "naira_balance", "usdt_balance", "escrow_usdt"}).
				AddRow(userID.String(), "17500.00", "42.5", "0"))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		snap, err := repo.AdjustBalance(context.Background(), models.BalanceAdjustment{
			UserID: userID, AdminID: adminID, Currency: models.CurrencyNGN,
			Amount: decimal.RequireFromString("2500"), Note: "bank reversal", Now: now,
		})
		require.NoError(t, err)
		assert.Equal(t, "17500", snap.NairaBalance.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("debit below zero", func(t *testing.T) {
		db, mock := setupMockDB(t)
		defer db.Close()
		repo := repository.NewUserRepository(&models.Config{}, db, nil)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET usdt_balance = usdt_balance + $1")).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		_, err := repo.AdjustBalance(context.Background(), models.BalanceAdjustment{
			UserID: userID, AdminID: adminID, Currency: models.CurrencyUSDT,
			Amount: decimal.RequireFromString("-100"), Now: now,
		})
		assert.ErrorIs(t, err, apperrors.ErrInsufficientBalance)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user", func(t *testing.T) {
		db, mock := setupMockDB(t)
		defer db.Close()
		repo := repository.NewUserRepository(&models.Config{}, db, nil)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET usdt_balance")).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectRollback()

		_, err := repo.AdjustBalance(context.Background(), models.BalanceAdjustment{
			UserID: userID, Currency: models.CurrencyUSDT, Amount: decimal.RequireFromString("5"), Now: now,
		})
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestGetTradeStats(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := repository.NewUserRepository(&models.Config{}, db, nil)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("AS completed_trades")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"completed_trades", "rating_average", "rating_count"}).
			AddRow(14, "4.67", 9))

	stats, err := repo.GetTradeStats(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 14, stats.CompletedTrades)
	assert.Equal(t, "4.67", stats.RatingAverage.String())
	assert.Equal(t, 9, stats.RatingCount)
}

func TestSetTOTP(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := repository.NewUserRepository(&models.Config{}, db, nil)

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET totp_secret = $1, totp_enabled = $2")).
		WithArgs("JBSWY3DPEHPK3PXP", true, sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.SetTOTP(context.Background(), id, "JBSWY3DPEHPK3PXP", true))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET totp_secret")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.SetTOTP(context.Background(), uuid.New(), "", false), apperrors.ErrUserNotFound)
}
