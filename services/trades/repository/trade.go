package repository

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
	"github.com/piresc/nairaxchange/internal/pkg/ledger"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/services/trades"
)

const tradeColumns = `id, offer_id, buyer_id, seller_id, maker_id, amount, rate, fiat_amount, fee,
	status, payment_method, payment_reference, dispute_reason, disputed_by, resolution_note,
	resolved_by, cancel_reason, expires_at, paid_at, completed_at, cancelled_at, created_at, updated_at`

// TradeRepo implements trades.TradeRepo on Postgres
type TradeRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTradeRepository creates a new trade repository
func NewTradeRepository(cfg *models.Config, db *sqlx.DB) trades.TradeRepo {
	return &TradeRepo{cfg: cfg, db: db}
}

// GetOffer loads the offer a trade is taken against
func (r *TradeRepo) GetOffer(ctx context.Context, offerID uuid.UUID) (*models.Offer, error) {
	query := `
		SELECT o.id, o.user_id, u.username AS maker_username, o.type, o.rate, o.min_amount,
			o.max_amount, o.available_amount, o.payment_method, o.terms, o.payment_window_minutes,
			o.auto_accept, o.is_active, o.created_at, o.updated_at
		FROM offers o
		JOIN users u ON u.id = o.user_id
		WHERE o.id = $1`

	var offer models.Offer
	if err := r.db.GetContext(ctx, &offer, query, offerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	return &offer, nil
}

// CreateTrade reserves offer capacity, escrows the seller's USDT, inserts the
// trade with its escrow ledger row and an opening chat message
func (r *TradeRepo) CreateTrade(ctx context.Context, trade *models.Trade) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE offers
		SET available_amount = available_amount - $1, updated_at = $2
		WHERE id = $3 AND is_active AND rate = $4 AND available_amount >= $1`,
		trade.Amount, trade.CreatedAt, trade.OfferID, trade.Rate)
	if err != nil {
		return fmt.Errorf("failed to reserve offer amount: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrOfferUnavailable
	}

	res, err = tx.ExecContext(ctx, `
		UPDATE users
		SET usdt_balance = usdt_balance - $1, escrow_usdt = escrow_usdt + $1, updated_at = $2
		WHERE id = $3 AND is_active AND usdt_balance >= $1`,
		trade.Amount, trade.CreatedAt, trade.SellerID)
	if err != nil {
		return fmt.Errorf("failed to escrow seller funds: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrInsufficientBalance
	}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO trades (
			id, offer_id, buyer_id, seller_id, maker_id, amount, rate, fiat_amount, fee,
			status, payment_method, expires_at, created_at, updated_at
		) VALUES (
			:id, :offer_id, :buyer_id, :seller_id, :maker_id, :amount, :rate, :fiat_amount, :fee,
			:status, :payment_method, :expires_at, :created_at, :updated_at
		)`, trade)
	if err != nil {
		return fmt.Errorf("failed to insert trade: %w", err)
	}

	entry := ledger.TradeEntry(trade.SellerID, trade.ID, models.TransactionTradeEscrow, trade.Amount, trade.CreatedAt)
	if err := ledger.Record(ctx, tx, entry); err != nil {
		return err
	}

	msg := fmt.Sprintf("Trade opened for %s USDT at %s NGN/USDT (%s NGN).",
		trade.Amount.String(), trade.Rate.StringFixed(2), trade.FiatAmount.StringFixed(2))
	if err := insertSystemMessage(ctx, tx, trade.ID, msg, trade.CreatedAt); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetTradeByID retrieves a trade
func (r *TradeRepo) GetTradeByID(ctx context.Context, id uuid.UUID) (*models.Trade, error) {
	var trade models.Trade
	err := r.db.GetContext(ctx, &trade, `SELECT `+tradeColumns+` FROM trades WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrTradeNotFound
		}
		return nil, fmt.Errorf("failed to get trade: %w", err)
	}
	return &trade, nil
}

// ListTradesForUser lists trades where the user is buyer or seller, newest first
func (r *TradeRepo) ListTradesForUser(ctx context.Context, userID uuid.UUID, filter models.TradeFilter) ([]*models.Trade, error) {
	page := filter.Pagination.Normalize()
	query := `SELECT ` + tradeColumns + `
		FROM trades
		WHERE (buyer_id = $1 OR seller_id = $1) AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`

	out := []*models.Trade{}
	if err := r.db.SelectContext(ctx, &out, query, userID, string(filter.Status), page.Limit, page.Offset); err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}
	return out, nil
}

// ListDisputed lists disputed trades, oldest dispute first
func (r *TradeRepo) ListDisputed(ctx context.Context, page models.Pagination) ([]*models.Trade, error) {
	page = page.Normalize()
	query := `SELECT ` + tradeColumns + `
		FROM trades
		WHERE status = $1
		ORDER BY updated_at ASC
		LIMIT $2 OFFSET $3`

	out := []*models.Trade{}
	if err := r.db.SelectContext(ctx, &out, query, string(models.TradeStatusDisputed), page.Limit, page.Offset); err != nil {
		return nil, fmt.Errorf("failed to list disputed trades: %w", err)
	}
	return out, nil
}

// ListOverdue returns ids of trades whose deadline is strictly before now
// while still awaiting acceptance or payment
func (r *TradeRepo) ListOverdue(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	query := `
		SELECT id FROM trades
		WHERE status = ANY($1) AND expires_at < $2
		ORDER BY expires_at
		LIMIT $3`

	statuses := statusArray(models.SourcesFor(models.TradeStatusExpired))
	var ids []uuid.UUID
	if err := r.db.SelectContext(ctx, &ids, query, statuses, now, limit); err != nil {
		return nil, fmt.Errorf("failed to list overdue trades: %w", err)
	}
	return ids, nil
}

// GetBalances loads balance snapshots for the given users
func (r *TradeRepo) GetBalances(ctx context.Context, userIDs ...uuid.UUID) ([]models.BalanceSnapshot, error) {
	return ledger.Balances(ctx, r.db, userIDs...)
}

// Transition moves a trade from one of t.From to t.To and applies the
// settlement in the same transaction. Exactly one of several concurrent
// transitions on the same trade succeeds.
func (r *TradeRepo) Transition(ctx context.Context, t models.TradeTransition) (*models.Trade, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE trades SET
			status = $2,
			updated_at = $3,
			expires_at = COALESCE($4, expires_at),
			payment_reference = CASE WHEN $5 <> '' THEN $5 ELSE payment_reference END,
			dispute_reason = CASE WHEN $6 <> '' THEN $6 ELSE dispute_reason END,
			disputed_by = COALESCE($7, disputed_by),
			resolution_note = CASE WHEN $8 <> '' THEN $8 ELSE resolution_note END,
			resolved_by = COALESCE($9, resolved_by),
			cancel_reason = CASE WHEN $10 <> '' THEN $10 ELSE cancel_reason END,
			paid_at = CASE WHEN $2 = 'payment_made' THEN $3 ELSE paid_at END,
			completed_at = CASE WHEN $2 = 'completed' THEN $3 ELSE completed_at END,
			cancelled_at = CASE WHEN $2 IN ('cancelled', 'expired') THEN $3 ELSE cancelled_at END
		WHERE id = $1
			AND status = ANY($11)
			AND ($12 = 0 OR ($12 = 1 AND expires_at >= $3) OR ($12 = 2 AND expires_at < $3))
		RETURNING ` + tradeColumns

	var trade models.Trade
	err = tx.QueryRowxContext(ctx, query,
		t.TradeID,
		string(t.To),
		t.Now,
		t.ExpiresAt,
		t.PaymentReference,
		t.DisputeReason,
		t.DisputedBy,
		t.ResolutionNote,
		t.ResolvedBy,
		t.CancelReason,
		statusArray(t.From),
		int(t.Expiry),
	).StructScan(&trade)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.rejection(ctx, tx, t)
		}
		return nil, fmt.Errorf("failed to update trade status: %w", err)
	}

	switch t.Settlement {
	case models.SettlementRefund:
		err = refundEscrow(ctx, tx, &trade, t.Now)
	case models.SettlementRelease:
		err = releaseEscrow(ctx, tx, &trade, t.Now)
	}
	if err != nil {
		return nil, err
	}

	if t.SystemMessage != "" {
		if err := insertSystemMessage(ctx, tx, trade.ID, t.SystemMessage, t.Now); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &trade, nil
}

// rejection explains why a compare-and-set matched no row
func (r *TradeRepo) rejection(ctx context.Context, tx *sqlx.Tx, t models.TradeTransition) error {
	var current struct {
		Status    models.TradeStatus `db:"status"`
		ExpiresAt time.Time          `db:"expires_at"`
	}
	err := tx.GetContext(ctx, &current, `SELECT status, expires_at FROM trades WHERE id = $1`, t.TradeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrTradeNotFound
		}
		return fmt.Errorf("failed to load trade status: %w", err)
	}

	if t.Expiry == models.ExpiryLive && containsStatus(t.From, current.Status) && current.ExpiresAt.Before(t.Now) {
		return apperrors.ErrTradeExpired
	}
	return fmt.Errorf("%w: %s to %s", apperrors.ErrInvalidTransition, current.Status, t.To)
}

func refundEscrow(ctx context.Context, tx *sqlx.Tx, trade *models.Trade, now time.Time) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE users
		SET escrow_usdt = escrow_usdt - $1, usdt_balance = usdt_balance + $1, updated_at = $2
		WHERE id = $3 AND escrow_usdt >= $1`,
		trade.Amount, now, trade.SellerID)
	if err != nil {
		return fmt.Errorf("failed to refund escrow: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("escrow underflow refunding trade %s", trade.ID)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE offers SET available_amount = available_amount + $1, updated_at = $2 WHERE id = $3`,
		trade.Amount, now, trade.OfferID)
	if err != nil {
		return fmt.Errorf("failed to restore offer amount: %w", err)
	}

	return ledger.Record(ctx, tx, ledger.TradeEntry(trade.SellerID, trade.ID, models.TransactionTradeRefund, trade.Amount, now))
}

func releaseEscrow(ctx context.Context, tx *sqlx.Tx, trade *models.Trade, now time.Time) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE users SET escrow_usdt = escrow_usdt - $1, updated_at = $2
		WHERE id = $3 AND escrow_usdt >= $1`,
		trade.Amount, now, trade.SellerID)
	if err != nil {
		return fmt.Errorf("failed to release escrow: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("escrow underflow releasing trade %s", trade.ID)
	}

	credit := trade.Amount.Sub(trade.Fee)
	_, err = tx.ExecContext(ctx, `
		UPDATE users SET usdt_balance = usdt_balance + $1, updated_at = $2 WHERE id = $3`,
		credit, now, trade.BuyerID)
	if err != nil {
		return fmt.Errorf("failed to credit buyer: %w", err)
	}

	entries := []*models.Transaction{
		ledger.TradeEntry(trade.SellerID, trade.ID, models.TransactionTradeRelease, trade.Amount, now),
		ledger.TradeEntry(trade.BuyerID, trade.ID, models.TransactionTradeCredit, credit, now),
	}
	if trade.Fee.IsPositive() {
		entries = append(entries, ledger.TradeEntry(trade.BuyerID, trade.ID, models.TransactionFee, trade.Fee, now))
	}
	for _, e := range entries {
		if err := ledger.Record(ctx, tx, e); err != nil {
			return err
		}
	}
	return nil
}

func insertSystemMessage(ctx context.Context, tx *sqlx.Tx, tradeID uuid.UUID, content string, now time.Time) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO messages (id, trade_id, sender_id, content, is_system, created_at)
		VALUES ($1, $2, NULL, $3, TRUE, $4)`,
		uuid.New(), tradeID, content, now)
	if err != nil {
		return fmt.Errorf("failed to insert system message: %w", err)
	}
	return nil
}

func statusArray(statuses []models.TradeStatus) interface{} {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return pq.Array(out)
}

func containsStatus(statuses []models.TradeStatus, s models.TradeStatus) bool {
	for _, v := range statuses {
		if v == s {
			return true
		}
	}
	return false
}
