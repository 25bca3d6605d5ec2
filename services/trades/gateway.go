package trades

import (
	"context"

	"github.com/piresc/nairaxchange/internal/pkg/models"
)

// TradeGW defines the interface for trade event publishing
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/nairaxchange/services/trades TradeGW
type TradeGW interface {
	PublishTradeCreated(ctx context.Context, event models.TradeEvent) error
	PublishTradeStatusChanged(ctx context.Context, event models.TradeEvent) error
	PublishBalanceUpdated(ctx context.Context, event models.BalanceEvent) error
}
