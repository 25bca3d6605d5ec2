// Package ledger writes balance ledger rows and reads balance snapshots
// inside the caller's database transaction.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/shopspring/decimal"
)

const insertEntryQuery = `
	INSERT INTO transactions (
		id, user_id, trade_id, type, currency, amount, status,
		reference, destination, tx_hash, note, created_at, updated_at
	) VALUES (
		:id, :user_id, :trade_id, :type, :currency, :amount, :status,
		:reference, :destination, :tx_hash, :note, :created_at, :updated_at
	)`

const balancesQuery = `
	SELECT id, naira_balance, usdt_balance, escrow_usdt
	FROM users
	WHERE id = ANY($1)
	ORDER BY id`

// Record inserts entry, assigning its id and timestamps when unset
func Record(ctx context.Context, tx sqlx.ExtContext, entry *models.Transaction) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	entry.UpdatedAt = entry.CreatedAt
	if entry.Status == "" {
		entry.Status = models.TransactionCompleted
	}

	if _, err := sqlx.NamedExecContext(ctx, tx, insertEntryQuery, entry); err != nil {
		return fmt.Errorf("failed to record %s ledger entry: %w", entry.Type, err)
	}
	return nil
}

// TradeEntry builds a completed USDT entry tied to a trade
func TradeEntry(userID, tradeID uuid.UUID, typ models.TransactionType, amount decimal.Decimal, now time.Time) *models.Transaction {
	id := tradeID
	return &models.Transaction{
		UserID:    userID,
		TradeID:   &id,
		Type:      typ,
		Currency:  models.CurrencyUSDT,
		Amount:    amount,
		Status:    models.TransactionCompleted,
		CreatedAt: now,
	}
}

// Balances loads balance snapshots for ids
func Balances(ctx context.Context, q sqlx.QueryerContext, ids ...uuid.UUID) ([]models.BalanceSnapshot, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}

	var out []models.BalanceSnapshot
	if err := sqlx.SelectContext(ctx, q, &out, balancesQuery, pq.Array(keys)); err != nil {
		return nil, fmt.Errorf("failed to load balances: %w", err)
	}
	return out, nil
}

var balanceColumn = map[models.Currency]string{
	models.CurrencyNGN:  "naira_balance",
	models.CurrencyUSDT: "usdt_balance",
}

// Adjust adds delta to a user's spendable balance in currency. The update is
// conditional so a debit never drives the balance negative; when it would,
// ErrInsufficientBalance is returned and nothing changes.
func Adjust(ctx context.Context, tx sqlx.QueryerContext, userID uuid.UUID, currency models.Currency, delta decimal.Decimal, now time.Time) (*models.BalanceSnapshot, error) {
	column, ok := balanceColumn[currency]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, currency)
	}

	query := fmt.Sprintf(`
		UPDATE users SET %[1]s = %[1]s + $1, updated_at = $2
		WHERE id = $3 AND %[1]s + $1 >= 0
		RETURNING id, naira_balance, usdt_balance, escrow_usdt`, column)

	var snapshot models.BalanceSnapshot
	if err := sqlx.GetContext(ctx, tx, &snapshot, query, delta, now, userID); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to adjust balance: %w", err)
		}
		var exists bool
		if err := sqlx.GetContext(ctx, tx, &exists, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID); err != nil {
			return nil, fmt.Errorf("failed to check user: %w", err)
		}
		if !exists {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.ErrInsufficientBalance
	}
	return &snapshot, nil
}
