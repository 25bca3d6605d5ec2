package gateway

import (
	"context"

	"github.com/piresc/nairaxchange/internal/pkg/constants"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	natspkg "github.com/piresc/nairaxchange/internal/pkg/nats"
	"github.com/piresc/nairaxchange/services/messages"
)

// MessageGW handles NATS publishing for chat messages
type MessageGW struct {
	natsClient *natspkg.Client
}

// NewMessageGW creates a new message gateway
func NewMessageGW(client *natspkg.Client) messages.MessageGW {
	return &MessageGW{
		natsClient: client,
	}
}

// PublishMessage publishes a trade.message event
func (g *MessageGW) PublishMessage(ctx context.Context, event models.MessageEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectTradeMessage, event)
}
