package messages

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/models"
)

// MessageRepo defines the interface for trade chat data access
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/nairaxchange/services/messages MessageRepo
type MessageRepo interface {
	// GetTrade loads the participants and status of the chat's trade
	GetTrade(ctx context.Context, tradeID uuid.UUID) (*models.Trade, error)
	CreateMessage(ctx context.Context, msg *models.Message) error
	ListMessages(ctx context.Context, tradeID uuid.UUID, page models.Pagination) ([]*models.Message, error)
}
