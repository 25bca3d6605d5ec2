package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/services/kyc/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	kycCols = []string{
		"id", "user_id", "bvn", "full_name", "date_of_birth", "status", "rejection_reason",
		"reviewed_by", "reviewed_at", "created_at",
	}
	now = time.Date(2025, 2, 10, 8, 0, 0, 0, time.UTC)
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestIsVerified(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := repository.NewKYCRepository(&models.Config{}, db)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT kyc_verified FROM users WHERE id = $1")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"kyc_verified"}).AddRow(true))

	verified, err := repo.IsVerified(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, verified)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT kyc_verified FROM users")).
		WillReturnError(sql.ErrNoRows)
	_, err = repo.IsVerified(context.Background(), userID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSubmission(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := repository.NewKYCRepository(&models.Config{}, db)

	v := &models.KYCVerification{
		ID: uuid.New(), UserID: uuid.New(), BVN: "22345678901", FullName: "Ada Obi",
		DateOfBirth: "1994-06-01", Status: models.KYCPending, CreatedAt: now,
	}

	t.Run("inserted", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kyc_verifications")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.CreateSubmission(context.Background(), v))
	})

	t.Run("pending exists", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kyc_verifications")).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "kyc_verifications_pending_key"})
		err := repo.CreateSubmission(context.Background(), v)
		assert.ErrorIs(t, err, apperrors.ErrKYCPendingExists)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatest(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := repository.NewKYCRepository(&models.Config{}, db)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(kycCols).AddRow(
			uuid.NewString(), userID.String(), "22345678901", "Ada Obi", "1994-06-01",
			"rejected", "blurry", uuid.NewString(), now, now))

	v, err := repo.GetLatest(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, models.KYCRejected, v.Status)
	assert.Equal(t, "blurry", v.RejectionReason)
	require.NotNil(t, v.ReviewedBy)

	mock.ExpectQuery(regexp.QuoteMeta("FROM kyc_verifications")).WillReturnError(sql.ErrNoRows)
	_, err = repo.GetLatest(context.Background(), userID)
	assert.ErrorIs(t, err, apperrors.ErrKYCNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPending(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := repository.NewKYCRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = 'pending'")).
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows(kycCols).
			AddRow(uuid.NewString(), uuid.NewString(), "22345678901", "Ada Obi", "1994-06-01", "pending", "", nil, nil, now).
			AddRow(uuid.NewString(), uuid.NewString(), "22345678902", "Bayo Ade", "1990-01-15", "pending", "", nil, nil, now))

	list, err := repo.ListPending(context.Background(), models.Pagination{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Nil(t, list[0].ReviewedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReview_Approve(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := repository.NewKYCRepository(&models.Config{}, db)

	id, userID, adminID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE kyc_verifications")).
		WithArgs(id, "approved", "", adminID, now).
		WillReturnRows(sqlmock.NewRows(kycCols).AddRow(
			id.String(), userID.String(), "22345678901", "Ada Obi", "1994-06-01",
			"approved", "", adminID.String(), now, now))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET kyc_verified = TRUE")).
		WithArgs(userID, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	v, err := repo.Review(context.Background(), models.KYCReview{
		ID: id, Status: models.KYCApproved, ReviewerID: adminID, Now: now,
	})
	require.NoError(t, err)
	assert.Equal(t, models.KYCApproved, v.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReview_RejectLeavesUserUntouched(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := repository.NewKYCRepository(&models.Config{}, db)

	id, adminID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE kyc_verifications")).
		WithArgs(id, "rejected", "name mismatch", adminID, now).
		WillReturnRows(sqlmock.NewRows(kycCols).AddRow(
			id.String(), uuid.NewString(), "22345678901", "Ada Obi", "1994-06-01",
			"rejected", "name mismatch", adminID.String(), now, now))
	mock.ExpectCommit()

	v, err := repo.Review(context.Background(), models.KYCReview{
		ID: id, Status: models.KYCRejected, Reason: "name mismatch", ReviewerID: adminID, Now: now,
	})
	require.NoError(t, err)
	assert.Equal(t, "name mismatch", v.RejectionReason)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReview_NotPending(t *testing.T) {
	tests := []struct {
		name    string
		lookup  func(sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "already reviewed",
			lookup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("SELECT status FROM kyc_verifications")).
					WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("approved"))
			},
			wantErr: apperrors.ErrConflict,
		},
		{
			name: "unknown id",
			lookup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("SELECT status FROM kyc_verifications")).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: apperrors.ErrKYCNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			defer db.Close()
			repo := repository.NewKYCRepository(&models.Config{}, db)

			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta("UPDATE kyc_verifications")).WillReturnError(sql.ErrNoRows)
			tt.lookup(mock)
			mock.ExpectRollback()

			_, err := repo.Review(context.Background(), models.KYCReview{
				ID: uuid.New(), Status: models.KYCApproved, ReviewerID: uuid.New(), Now: now,
			})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
