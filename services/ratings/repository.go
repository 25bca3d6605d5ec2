package ratings

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/models"
)

// RatingRepo defines the interface for rating data access
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/nairaxchange/services/ratings RatingRepo
type RatingRepo interface {
	GetTrade(ctx context.Context, tradeID uuid.UUID) (*models.Trade, error)
	CreateRating(ctx context.Context, rating *models.Rating) error
	ListForUser(ctx context.Context, userID uuid.UUID, page models.Pagination) ([]*models.Rating, error)
	Summary(ctx context.Context, userID uuid.UUID) (*models.RatingSummary, error)
}
