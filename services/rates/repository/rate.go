package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/database"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/services/rates"
)

const rateColumns = `id, pair, buy_rate, sell_rate, source, updated_by, created_at`

// RateRepo implements rates.RateRepo on Postgres with a Redis read cache
type RateRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewRateRepository creates a new rate repository
func NewRateRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) rates.RateRepo {
	return &RateRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// GetLatest returns the newest rate for pair
func (r *RateRepo) GetLatest(ctx context.Context, pair string) (*models.ExchangeRate, error) {
	var rate models.ExchangeRate
	err := r.db.GetContext(ctx, &rate, `SELECT `+rateColumns+`
		FROM exchange_rates
		WHERE pair = $1
		ORDER BY created_at DESC
		LIMIT 1`, pair)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrRateNotFound
		}
		return nil, fmt.Errorf("failed to get exchange rate: %w", err)
	}
	return &rate, nil
}

// Insert appends a new rate row
func (r *RateRepo) Insert(ctx context.Context, rate *models.ExchangeRate) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO exchange_rates (id, pair, buy_rate, sell_rate, source, updated_by, created_at)
		VALUES (:id, :pair, :buy_rate, :sell_rate, :source, :updated_by, :created_at)`, rate)
	if err != nil {
		return fmt.Errorf("failed to insert exchange rate: %w", err)
	}
	return nil
}

// History returns past rates for pair, newest first
func (r *RateRepo) History(ctx context.Context, pair string, page models.Pagination) ([]*models.ExchangeRate, error) {
	page = page.Normalize()
	out := []*models.ExchangeRate{}
	err := r.db.SelectContext(ctx, &out, `SELECT `+rateColumns+`
		FROM exchange_rates
		WHERE pair = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, pair, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	return out, nil
}
