package gateway

import (
	"context"

	"github.com/piresc/nairaxchange/internal/pkg/constants"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	natspkg "github.com/piresc/nairaxchange/internal/pkg/nats"
	"github.com/piresc/nairaxchange/services/trades"
)

// TradeGW handles NATS publishing for trade events
type TradeGW struct {
	natsClient *natspkg.Client
}

// NewTradeGW creates a new trade gateway
func NewTradeGW(client *natspkg.Client) trades.TradeGW {
	return &TradeGW{
		natsClient: client,
	}
}

// PublishTradeCreated publishes a trade.created event
func (g *TradeGW) PublishTradeCreated(ctx context.Context, event models.TradeEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectTradeCreated, event)
}

// PublishTradeStatusChanged publishes a trade.status_changed event
func (g *TradeGW) PublishTradeStatusChanged(ctx context.Context, event models.TradeEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectTradeStatusChanged, event)
}

// PublishBalanceUpdated publishes a balance.updated event
func (g *TradeGW) PublishBalanceUpdated(ctx context.Context, event models.BalanceEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectBalanceUpdated, event)
}
