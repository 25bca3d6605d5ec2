package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/database"
	"github.com/piresc/nairaxchange/internal/pkg/ledger"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/services/users"
)

const userColumns = `id, email, username, password_hash, full_name, phone, is_admin, kyc_verified,
	is_active, naira_balance, usdt_balance, escrow_usdt, bank_name, bank_account_number,
	bank_account_name, tron_address, deposit_address, totp_secret, totp_enabled, created_at, updated_at`

// UserRepo implements users.UserRepo on Postgres and Redis
type UserRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewUserRepository creates a new user repository
func NewUserRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) users.UserRepo {
	return &UserRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// CreateUser inserts a new account
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (
			id, email, username, password_hash, full_name, phone, is_admin, kyc_verified,
			is_active, created_at, updated_at
		) VALUES (
			:id, :email, :username, :password_hash, :full_name, :phone, :is_admin, :kyc_verified,
			:is_active, :created_at, :updated_at
		)`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		switch {
		case database.IsUniqueViolation(err, "users_email_key"):
			return apperrors.ErrEmailTaken
		case database.IsUniqueViolation(err, "users_username_key"):
			return apperrors.ErrUsernameTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by id
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getUserByField(ctx, "id", id)
}

// GetUserByEmail retrieves a user by email, case-insensitively
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUserByField(ctx, "email", strings.ToLower(strings.TrimSpace(email)))
}

// getUserByField is a helper to get a user by a fixed column
func (r *UserRepo) getUserByField(ctx context.Context, field string, value interface{}) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1`, userColumns, field)

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// UpdateProfile applies the non-nil fields of req
func (r *UserRepo) UpdateProfile(ctx context.Context, id uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error) {
	query := `
		UPDATE users SET
			full_name = COALESCE($2, full_name),
			phone = COALESCE($3, phone),
			bank_name = COALESCE($4, bank_name),
			bank_account_number = COALESCE($5, bank_account_number),
			bank_account_name = COALESCE($6, bank_account_name),
			tron_address = COALESCE($7, tron_address),
			updated_at = $8
		WHERE id = $1
		RETURNING ` + userColumns

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id,
		req.FullName, req.Phone, req.BankName, req.BankAccountNumber, req.BankAccountName, req.TronAddress,
		time.Now().UTC())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return &user, nil
}

// ListUsers lists accounts for admins, newest first
func (r *UserRepo) ListUsers(ctx context.Context, filter models.UserFilter) ([]*models.User, error) {
	page := filter.Pagination.Normalize()
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE $1 = '' OR email ILIKE '%' || $1 || '%' OR username ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	out := []*models.User{}
	if err := r.db.SelectContext(ctx, &out, query, strings.TrimSpace(filter.Search), page.Limit, page.Offset); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return out, nil
}

// SetAdmin sets the admin flag
func (r *UserRepo) SetAdmin(ctx context.Context, id uuid.UUID, value bool) (*models.User, error) {
	return r.setFlag(ctx, "is_admin", id, value)
}

// SetActive sets the active flag
func (r *UserRepo) SetActive(ctx context.Context, id uuid.UUID, value bool) (*models.User, error) {
	return r.setFlag(ctx, "is_active", id, value)
}

func (r *UserRepo) setFlag(ctx context.Context, column string, id uuid.UUID, value bool) (*models.User, error) {
	query := fmt.Sprintf(`UPDATE users SET %s = $1, updated_at = $2 WHERE id = $3 RETURNING %s`, column, userColumns)

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, value, time.Now().UTC(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update %s: %w", column, err)
	}
	return &user, nil
}

// AdjustBalance credits or debits a balance. A debit that would take the
// balance below zero fails with ErrInsufficientBalance.
func (r *UserRepo) AdjustBalance(ctx context.Context, adj models.BalanceAdjustment) (*models.BalanceSnapshot, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	snapshot, err := ledger.Adjust(ctx, tx, adj.UserID, adj.Currency, adj.Amount, adj.Now)
	if err != nil {
		return nil, err
	}

	entry := &models.Transaction{
		UserID:    adj.UserID,
		Type:      models.TransactionAdminAdjustment,
		Currency:  adj.Currency,
		Amount:    adj.Amount,
		Status:    models.TransactionCompleted,
		Reference: "admin:" + adj.AdminID.String(),
		Note:      adj.Note,
		CreatedAt: adj.Now,
	}
	if err := ledger.Record(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return snapshot, nil
}

// GetTradeStats counts completed trades and aggregates received ratings
func (r *UserRepo) GetTradeStats(ctx context.Context, id uuid.UUID) (*models.TradeStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM trades
				WHERE (buyer_id = $1 OR seller_id = $1) AND status = 'completed') AS completed_trades,
			COALESCE((SELECT ROUND(AVG(score)::numeric, 2) FROM ratings WHERE ratee_id = $1), 0) AS rating_average,
			(SELECT COUNT(*) FROM ratings WHERE ratee_id = $1) AS rating_count`

	var stats models.TradeStats
	if err := r.db.GetContext(ctx, &stats, query, id); err != nil {
		return nil, fmt.Errorf("failed to load trade stats: %w", err)
	}
	return &stats, nil
}

// SetTOTP stores the confirmed secret and the enabled flag
func (r *UserRepo) SetTOTP(ctx context.Context, id uuid.UUID, secret string, enabled bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET totp_secret = $1, totp_enabled = $2, updated_at = $3 WHERE id = $4`,
		secret, enabled, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update two-factor settings: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
