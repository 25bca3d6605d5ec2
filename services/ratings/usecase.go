package ratings

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/models"
)

// RatingUC defines the counterparty feedback operations
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/nairaxchange/services/ratings RatingUC
type RatingUC interface {
	RateTrade(ctx context.Context, actor models.Actor, tradeID uuid.UUID, req *models.RateTradeRequest) (*models.Rating, error)
	ListForUser(ctx context.Context, userID uuid.UUID, page models.Pagination) (*models.UserRatings, error)
	Summary(ctx context.Context, userID uuid.UUID) (*models.RatingSummary, error)
}
