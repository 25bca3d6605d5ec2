package messages

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/models"
)

// MessageUC defines the trade chat operations
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/nairaxchange/services/messages MessageUC
type MessageUC interface {
	SendMessage(ctx context.Context, actor models.Actor, tradeID uuid.UUID, req *models.SendMessageRequest) (*models.Message, error)
	ListMessages(ctx context.Context, actor models.Actor, tradeID uuid.UUID, page models.Pagination) ([]*models.Message, error)
}
