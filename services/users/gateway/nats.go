package gateway

import (
	"context"

	"github.com/piresc/nairaxchange/internal/pkg/constants"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	natspkg "github.com/piresc/nairaxchange/internal/pkg/nats"
	"github.com/piresc/nairaxchange/services/users"
)

// UserGW handles NATS publishing for account events
type UserGW struct {
	natsClient *natspkg.Client
}

// NewUserGW creates a new user gateway
func NewUserGW(client *natspkg.Client) users.UserGW {
	return &UserGW{
		natsClient: client,
	}
}

// PublishBalanceUpdated publishes a balance.updated event
func (g *UserGW) PublishBalanceUpdated(ctx context.Context, event models.BalanceEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectBalanceUpdated, event)
}
