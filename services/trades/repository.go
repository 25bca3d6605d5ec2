package trades

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/models"
)

// TradeRepo defines the interface for trade data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/nairaxchange/services/trades TradeRepo
type TradeRepo interface {
	GetOffer(ctx context.Context, offerID uuid.UUID) (*models.Offer, error)

	// CreateTrade reserves offer capacity, escrows the seller's USDT and
	// inserts the trade in one transaction
	CreateTrade(ctx context.Context, trade *models.Trade) error
	GetTradeByID(ctx context.Context, id uuid.UUID) (*models.Trade, error)
	ListTradesForUser(ctx context.Context, userID uuid.UUID, filter models.TradeFilter) ([]*models.Trade, error)
	ListDisputed(ctx context.Context, page models.Pagination) ([]*models.Trade, error)

	// Transition applies a compare-and-set status change and its settlement
	Transition(ctx context.Context, t models.TradeTransition) (*models.Trade, error)
	ListOverdue(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)

	GetBalances(ctx context.Context, userIDs ...uuid.UUID) ([]models.BalanceSnapshot, error)
}
