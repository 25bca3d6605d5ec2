package messages

import (
	"context"

	"github.com/piresc/nairaxchange/internal/pkg/models"
)

// MessageGW defines the interface for chat event publishing
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/nairaxchange/services/messages MessageGW
type MessageGW interface {
	PublishMessage(ctx context.Context, event models.MessageEvent) error
}
