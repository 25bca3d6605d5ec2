package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/database"
	"github.com/piresc/nairaxchange/internal/pkg/ledger"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/internal/pkg/twofactor"
	"github.com/piresc/nairaxchange/services/wallet"
)

const (
	depositReferenceConstraint = "transactions_deposit_reference_key"

	transactionColumns = `id, user_id, trade_id, type, currency, amount, status, reference,
		destination, tx_hash, note, created_at, updated_at`

	userColumns = `id, email, username, password_hash, full_name, phone, is_admin, kyc_verified,
		is_active, naira_balance, usdt_balance, escrow_usdt, bank_name, bank_account_number,
		bank_account_name, tron_address, deposit_address, totp_secret, totp_enabled, created_at, updated_at`
)

// WalletRepo implements wallet.WalletRepo on Postgres, with redis for
// two-factor replay tracking
type WalletRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) wallet.WalletRepo {
	return &WalletRepo{cfg: cfg, db: db, redisClient: redisClient}
}

// ClaimTOTPStep refuses a withdrawal code the user already spent
func (r *WalletRepo) ClaimTOTPStep(ctx context.Context, userID uuid.UUID, step int64) error {
	return twofactor.ClaimStep(ctx, r.redisClient, userID, step)
}

// GetUser loads the account a wallet operation acts on
func (r *WalletRepo) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// ListTransactions returns a user's ledger, newest first
func (r *WalletRepo) ListTransactions(ctx context.Context, userID uuid.UUID, filter models.TransactionFilter) ([]*models.Transaction, error) {
	page := filter.Pagination.Normalize()
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
			AND ($2 = '' OR type = $2)
			AND ($3 = '' OR currency = $3)
		ORDER BY created_at DESC
		LIMIT $4 OFFSET $5`

	out := []*models.Transaction{}
	err := r.db.SelectContext(ctx, &out, query,
		userID, string(filter.Type), string(filter.Currency), page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return out, nil
}

// GetTransaction loads one ledger row
func (r *WalletRepo) GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	return getTransaction(ctx, r.db, id)
}

// SaveDepositAddress keeps the first address ever stored for a user
func (r *WalletRepo) SaveDepositAddress(ctx context.Context, userID uuid.UUID, addr string) (string, error) {
	var stored string
	err := r.db.GetContext(ctx, &stored, `
		UPDATE users SET deposit_address = $1, updated_at = NOW()
		WHERE id = $2 AND deposit_address = ''
		RETURNING deposit_address`, addr, userID)
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("failed to save deposit address: %w", err)
	}

	if err := r.db.GetContext(ctx, &stored, `SELECT deposit_address FROM users WHERE id = $1`, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperrors.ErrUserNotFound
		}
		return "", fmt.Errorf("failed to load deposit address: %w", err)
	}
	return stored, nil
}

// CreateWithdrawal debits the balance and records the pending withdrawal
func (r *WalletRepo) CreateWithdrawal(ctx context.Context, entry *models.Transaction) (*models.BalanceSnapshot, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	snapshot, err := ledger.Adjust(ctx, tx, entry.UserID, entry.Currency, entry.Amount.Neg(), entry.CreatedAt)
	if err != nil {
		return nil, err
	}

	entry.Type = models.TransactionWithdrawal
	entry.Status = models.TransactionPending
	if err := ledger.Record(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return snapshot, nil
}

// ListWithdrawals returns withdrawals in status, oldest first
func (r *WalletRepo) ListWithdrawals(ctx context.Context, status models.TransactionStatus, page models.Pagination) ([]*models.Transaction, error) {
	page = page.Normalize()
	out := []*models.Transaction{}
	err := r.db.SelectContext(ctx, &out, `SELECT `+transactionColumns+`
		FROM transactions
		WHERE type = 'withdrawal' AND status = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3`, string(status), page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list withdrawals: %w", err)
	}
	return out, nil
}

// ClaimWithdrawal moves a pending withdrawal to processing
func (r *WalletRepo) ClaimWithdrawal(ctx context.Context, id uuid.UUID, now time.Time) (*models.Transaction, error) {
	var entry models.Transaction
	err := r.db.GetContext(ctx, &entry, `
		UPDATE transactions SET status = 'processing', updated_at = $2
		WHERE id = $1 AND type = 'withdrawal' AND status = 'pending'
		RETURNING `+transactionColumns, id, now)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notPending(ctx, r.db, id)
		}
		return nil, fmt.Errorf("failed to claim withdrawal: %w", err)
	}
	return &entry, nil
}

// SetWithdrawalTxHash records the signed transfer id on a processing
// withdrawal that has none yet
func (r *WalletRepo) SetWithdrawalTxHash(ctx context.Context, id uuid.UUID, txHash string, now time.Time) (*models.Transaction, error) {
	var entry models.Transaction
	err := r.db.GetContext(ctx, &entry, `
		UPDATE transactions SET tx_hash = $2, updated_at = $3
		WHERE id = $1 AND type = 'withdrawal' AND status = 'processing' AND tx_hash = ''
		RETURNING `+transactionColumns, id, txHash, now)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notPending(ctx, r.db, id)
		}
		return nil, fmt.Errorf("failed to store withdrawal tx hash: %w", err)
	}
	return &entry, nil
}

// CompleteWithdrawal marks a processing withdrawal paid
func (r *WalletRepo) CompleteWithdrawal(ctx context.Context, id uuid.UUID, txHash string, now time.Time) (*models.Transaction, error) {
	var entry models.Transaction
	err := r.db.GetContext(ctx, &entry, `
		UPDATE transactions
		SET status = 'completed',
			tx_hash = CASE WHEN $2 = '' THEN tx_hash ELSE $2 END,
			updated_at = $3
		WHERE id = $1 AND type = 'withdrawal' AND status = 'processing'
		RETURNING `+transactionColumns, id, txHash, now)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notPending(ctx, r.db, id)
		}
		return nil, fmt.Errorf("failed to complete withdrawal: %w", err)
	}
	return &entry, nil
}

// RefundWithdrawal closes a withdrawal and returns the funds. A rejection
// applies to pending rows; a failure applies to rows already claimed.
func (r *WalletRepo) RefundWithdrawal(ctx context.Context, id uuid.UUID, status models.TransactionStatus, note string, now time.Time) (*models.Transaction, *models.BalanceSnapshot, error) {
	from := models.TransactionPending
	if status == models.TransactionFailed {
		from = models.TransactionProcessing
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var entry models.Transaction
	err = tx.GetContext(ctx, &entry, `
		UPDATE transactions SET status = $2, note = $3, updated_at = $4
		WHERE id = $1 AND type = 'withdrawal' AND status = $5
		RETURNING `+transactionColumns, id, string(status), note, now, string(from))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, notPending(ctx, tx, id)
		}
		return nil, nil, fmt.Errorf("failed to close withdrawal: %w", err)
	}

	snapshot, err := ledger.Adjust(ctx, tx, entry.UserID, entry.Currency, entry.Amount, now)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &entry, snapshot, nil
}

// CreditDeposit records an incoming deposit once per user and reference
func (r *WalletRepo) CreditDeposit(ctx context.Context, entry *models.Transaction) (*models.BalanceSnapshot, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	entry.Type = models.TransactionDeposit
	entry.Status = models.TransactionCompleted
	if err := ledger.Record(ctx, tx, entry); err != nil {
		if database.IsUniqueViolation(err, depositReferenceConstraint) {
			return nil, apperrors.ErrDuplicateReference
		}
		return nil, err
	}

	snapshot, err := ledger.Adjust(ctx, tx, entry.UserID, entry.Currency, entry.Amount, entry.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return snapshot, nil
}

func getTransaction(ctx context.Context, q sqlx.QueryerContext, id uuid.UUID) (*models.Transaction, error) {
	var entry models.Transaction
	if err := sqlx.GetContext(ctx, q, &entry, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &entry, nil
}

// notPending explains why a conditional withdrawal update matched nothing
func notPending(ctx context.Context, q sqlx.QueryerContext, id uuid.UUID) error {
	entry, err := getTransaction(ctx, q, id)
	if err != nil {
		return err
	}
	if entry.Type != models.TransactionWithdrawal {
		return apperrors.ErrTransactionNotFound
	}
	return fmt.Errorf("%w: status is %s", apperrors.ErrWithdrawalNotPending, entry.Status)
}
