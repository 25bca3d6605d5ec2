package rates

import (
	"context"

	"github.com/piresc/nairaxchange/internal/pkg/models"
)

// RateUC defines the reference exchange rate operations
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/nairaxchange/services/rates RateUC
type RateUC interface {
	Current(ctx context.Context, pair string) (*models.ExchangeRate, error)
	History(ctx context.Context, pair string, page models.Pagination) ([]*models.ExchangeRate, error)
	Set(ctx context.Context, actor models.Actor, req *models.SetRateRequest) (*models.ExchangeRate, error)
}
