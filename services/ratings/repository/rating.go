package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/database"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/services/ratings"
)

const tradeRaterConstraint = "ratings_trade_rater_key"

// RatingRepo implements ratings.RatingRepo on Postgres
type RatingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(cfg *models.Config, db *sqlx.DB) ratings.RatingRepo {
	return &RatingRepo{cfg: cfg, db: db}
}

// GetTrade loads the participants and status of a trade
func (r *RatingRepo) GetTrade(ctx context.Context, tradeID uuid.UUID) (*models.Trade, error) {
	var trade models.Trade
	err := r.db.GetContext(ctx, &trade,
		`SELECT id, buyer_id, seller_id, status FROM trades WHERE id = $1`, tradeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrTradeNotFound
		}
		return nil, fmt.Errorf("failed to get trade: %w", err)
	}
	return &trade, nil
}

// CreateRating inserts a rating; a second rating by the same rater on the
// same trade fails with ErrAlreadyRated
func (r *RatingRepo) CreateRating(ctx context.Context, rating *models.Rating) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO ratings (id, trade_id, rater_id, ratee_id, score, comment, created_at)
		VALUES (:id, :trade_id, :rater_id, :ratee_id, :score, :comment, :created_at)`, rating)
	if err != nil {
		if database.IsUniqueViolation(err, tradeRaterConstraint) {
			return apperrors.ErrAlreadyRated
		}
		return fmt.Errorf("failed to insert rating: %w", err)
	}
	return nil
}

// ListForUser returns ratings received by a user, newest first
func (r *RatingRepo) ListForUser(ctx context.Context, userID uuid.UUID, page models.Pagination) ([]*models.Rating, error) {
	page = page.Normalize()
	out := []*models.Rating{}
	err := r.db.SelectContext(ctx, &out, `
		SELECT r.id, r.trade_id, r.rater_id, r.ratee_id, u.username AS rater_username,
			r.score, r.comment, r.created_at
		FROM ratings r
		JOIN users u ON u.id = r.rater_id
		WHERE r.ratee_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2 OFFSET $3`,
		userID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	return out, nil
}

// Summary averages a user's received scores to two decimal places
func (r *RatingRepo) Summary(ctx context.Context, userID uuid.UUID) (*models.RatingSummary, error) {
	var summary models.RatingSummary
	err := r.db.GetContext(ctx, &summary, `
		SELECT COALESCE(ROUND(AVG(score)::numeric, 2), 0) AS average, COUNT(*) AS count
		FROM ratings WHERE ratee_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarise ratings: %w", err)
	}
	return &summary, nil
}
