package gateway

import (
	"context"

	"github.com/piresc/nairaxchange/internal/pkg/constants"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	natspkg "github.com/piresc/nairaxchange/internal/pkg/nats"
	"github.com/piresc/nairaxchange/services/wallet"
)

// WalletGW handles NATS publishing for wallet events
type WalletGW struct {
	natsClient *natspkg.Client
}

// NewWalletGW creates a new wallet gateway
func NewWalletGW(client *natspkg.Client) wallet.WalletGW {
	return &WalletGW{
		natsClient: client,
	}
}

// PublishWithdrawalUpdated publishes a withdrawal.updated event
func (g *WalletGW) PublishWithdrawalUpdated(ctx context.Context, event models.WithdrawalEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectWithdrawalUpdated, event)
}

// PublishBalanceUpdated publishes a balance.updated event
func (g *WalletGW) PublishBalanceUpdated(ctx context.Context, event models.BalanceEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectBalanceUpdated, event)
}
