package rates

import (
	"context"
	"time"

	"github.com/piresc/nairaxchange/internal/pkg/models"
)

// RateRepo defines the interface for exchange rate storage and caching
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/nairaxchange/services/rates RateRepo
type RateRepo interface {
	GetCached(ctx context.Context, pair string) (*models.ExchangeRate, error)
	Cache(ctx context.Context, rate *models.ExchangeRate, ttl time.Duration) error
	GetLatest(ctx context.Context, pair string) (*models.ExchangeRate, error)
	Insert(ctx context.Context, rate *models.ExchangeRate) error
	History(ctx context.Context, pair string, page models.Pagination) ([]*models.ExchangeRate, error)
}
