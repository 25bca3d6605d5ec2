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
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/services/offers"
	"github.com/shopspring/decimal"
)

const offerColumns = `
	o.id, o.user_id, u.username AS maker_username, o.type, o.rate, o.min_amount,
	o.max_amount, o.available_amount, o.payment_method, o.terms, o.payment_window_minutes,
	o.auto_accept, o.is_active, o.created_at, o.updated_at`

const offerSelect = `SELECT ` + offerColumns + `
	FROM offers o
	JOIN users u ON u.id = o.user_id`

// OfferRepo implements offers.OfferRepo on Postgres
type OfferRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewOfferRepository creates a new offer repository
func NewOfferRepository(cfg *models.Config, db *sqlx.DB) offers.OfferRepo {
	return &OfferRepo{cfg: cfg, db: db}
}

// CreateOffer inserts a new offer
func (r *OfferRepo) CreateOffer(ctx context.Context, offer *models.Offer) error {
	query := `
		INSERT INTO offers (
			id, user_id, type, rate, min_amount, max_amount, available_amount, payment_method,
			terms, payment_window_minutes, auto_accept, is_active, created_at, updated_at
		) VALUES (
			:id, :user_id, :type, :rate, :min_amount, :max_amount, :available_amount, :payment_method,
			:terms, :payment_window_minutes, :auto_accept, :is_active, :created_at, :updated_at
		)`
	if _, err := r.db.NamedExecContext(ctx, query, offer); err != nil {
		return fmt.Errorf("failed to insert offer: %w", err)
	}
	return nil
}

// GetOffer retrieves an offer with its maker's username
func (r *OfferRepo) GetOffer(ctx context.Context, id uuid.UUID) (*models.Offer, error) {
	var offer models.Offer
	if err := r.db.GetContext(ctx, &offer, offerSelect+` WHERE o.id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	return &offer, nil
}

// ListOffers returns the public book: active offers from active makers that
// can still fill their minimum, best rate first for each side
func (r *OfferRepo) ListOffers(ctx context.Context, filter models.OfferFilter) ([]*models.Offer, error) {
	page := filter.Pagination.Normalize()
	query := offerSelect + `
		WHERE o.is_active AND u.is_active AND o.available_amount >= o.min_amount
			AND ($1 = '' OR o.type = $1)
			AND ($2::numeric IS NULL OR ($2::numeric >= o.min_amount AND $2::numeric <= LEAST(o.max_amount, o.available_amount)))
			AND ($3 = '' OR o.payment_method = $3)
		ORDER BY
			CASE WHEN o.type = 'sell' THEN o.rate END ASC,
			CASE WHEN o.type = 'buy' THEN o.rate END DESC,
			o.created_at ASC
		LIMIT $4 OFFSET $5`

	out := []*models.Offer{}
	err := r.db.SelectContext(ctx, &out, query,
		string(filter.Type), filter.Amount, filter.PaymentMethod, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return out, nil
}

// ListByUser lists a maker's offers including inactive ones, newest first
func (r *OfferRepo) ListByUser(ctx context.Context, userID uuid.UUID, page models.Pagination) ([]*models.Offer, error) {
	page = page.Normalize()
	out := []*models.Offer{}
	err := r.db.SelectContext(ctx, &out,
		offerSelect+` WHERE o.user_id = $1 ORDER BY o.created_at DESC LIMIT $2 OFFSET $3`,
		userID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return out, nil
}

// UpdateOffer writes only the fields set in patch. Columns the caller left
// out, available_amount in particular, keep whatever a concurrent trade wrote.
func (r *OfferRepo) UpdateOffer(ctx context.Context, id uuid.UUID, patch *models.UpdateOfferRequest, now time.Time) (*models.Offer, error) {
	query := `
		WITH o AS (
			UPDATE offers SET
				rate = COALESCE($2::numeric, rate),
				min_amount = COALESCE($3::numeric, min_amount),
				max_amount = COALESCE($4::numeric, max_amount),
				available_amount = COALESCE($5::numeric, available_amount),
				payment_method = COALESCE($6::text, payment_method),
				terms = COALESCE($7::text, terms),
				payment_window_minutes = COALESCE($8::integer, payment_window_minutes),
				auto_accept = COALESCE($9::boolean, auto_accept),
				is_active = COALESCE($10::boolean, is_active),
				updated_at = $11
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + offerColumns + `
		FROM o
		JOIN users u ON u.id = o.user_id`

	var offer models.Offer
	err := r.db.GetContext(ctx, &offer, query, id,
		patch.Rate, patch.MinAmount, patch.MaxAmount, patch.AvailableAmount,
		patch.PaymentMethod, patch.Terms, patch.PaymentWindowMinutes, patch.AutoAccept, patch.IsActive,
		now)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to update offer: %w", err)
	}
	return &offer, nil
}

// Deactivate hides an offer from the book. Trades already open keep running.
func (r *OfferRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `UPDATE offers SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate offer: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrOfferNotFound
	}
	return nil
}

// GetUSDTBalance returns the maker's spendable USDT
func (r *OfferRepo) GetUSDTBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var balance decimal.Decimal
	if err := r.db.GetContext(ctx, &balance, `SELECT usdt_balance FROM users WHERE id = $1`, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, apperrors.ErrUserNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}
