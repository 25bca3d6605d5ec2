package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/logger"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/internal/utils"
)

// RateTrade records the caller's feedback on their counterparty
func (uc *RatingUC) RateTrade(ctx context.Context, actor models.Actor, tradeID uuid.UUID, req *models.RateTradeRequest) (*models.Rating, error) {
	if req.Score < 1 || req.Score > 5 {
		return nil, fmt.Errorf("%w: score must be between 1 and 5", apperrors.ErrValidation)
	}

	trade, err := uc.ratingRepo.GetTrade(ctx, tradeID)
	if err != nil {
		return nil, err
	}
	if !trade.IsParticipant(actor.UserID) {
		return nil, apperrors.ErrForbidden
	}
	if trade.Status != models.TradeStatusCompleted {
		return nil, apperrors.ErrTradeNotCompleted
	}

	rating := &models.Rating{
		ID:        uuid.New(),
		TradeID:   trade.ID,
		RaterID:   actor.UserID,
		RateeID:   trade.Counterparty(actor.UserID),
		Score:     req.Score,
		Comment:   utils.SanitizeText(req.Comment),
		CreatedAt: uc.now(),
	}
	if err := uc.ratingRepo.CreateRating(ctx, rating); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Trade rated",
		logger.UUID("trade_id", trade.ID),
		logger.UUID("ratee_id", rating.RateeID),
		logger.Int("score", rating.Score))
	return rating, nil
}

// ListForUser returns a user's received ratings with their summary
func (uc *RatingUC) ListForUser(ctx context.Context, userID uuid.UUID, page models.Pagination) (*models.UserRatings, error) {
	summary, err := uc.ratingRepo.Summary(ctx, userID)
	if err != nil {
		return nil, err
	}
	list, err := uc.ratingRepo.ListForUser(ctx, userID, page)
	if err != nil {
		return nil, err
	}
	return &models.UserRatings{Summary: *summary, Ratings: list}, nil
}

// Summary returns the average score and count for a user
func (uc *RatingUC) Summary(ctx context.Context, userID uuid.UUID) (*models.RatingSummary, error) {
	return uc.ratingRepo.Summary(ctx, userID)
}
