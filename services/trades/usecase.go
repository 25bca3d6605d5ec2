package trades

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/models"
)

// TradeUC defines the trade lifecycle operations
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/nairaxchange/services/trades TradeUC
type TradeUC interface {
	CreateTrade(ctx context.Context, actor models.Actor, req *models.CreateTradeRequest) (*models.Trade, error)
	GetTrade(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Trade, error)
	ListTrades(ctx context.Context, actor models.Actor, filter models.TradeFilter) ([]*models.Trade, error)
	ListDisputed(ctx context.Context, page models.Pagination) ([]*models.Trade, error)

	AcceptTrade(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Trade, error)
	MarkPaid(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.MarkPaidRequest) (*models.Trade, error)
	ReleaseTrade(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Trade, error)
	CancelTrade(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.CancelTradeRequest) (*models.Trade, error)
	DisputeTrade(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.DisputeRequest) (*models.Trade, error)
	ResolveDispute(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.ResolveDisputeRequest) (*models.Trade, error)

	// ExpireOverdue expires every overdue trade and returns how many moved
	ExpireOverdue(ctx context.Context, now time.Time) (int, error)
}
