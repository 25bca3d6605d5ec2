package wallet

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// WalletGW defines the interface for wallet event publishing
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/nairaxchange/services/wallet WalletGW
type WalletGW interface {
	PublishWithdrawalUpdated(ctx context.Context, event models.WithdrawalEvent) error
	PublishBalanceUpdated(ctx context.Context, event models.BalanceEvent) error
}

// ChainGW is the on-chain USDT client. PrepareUSDT builds and signs once;
// BroadcastUSDT may be repeated for the same transfer.
// go:generate mockgen -destination=mocks/mock_chain.go -package=mocks github.com/piresc/nairaxchange/services/wallet ChainGW
type ChainGW interface {
	DepositAddress(userID uuid.UUID) (string, error)
	PrepareUSDT(ctx context.Context, to string, amount decimal.Decimal) (*models.SignedTransfer, error)
	BroadcastUSDT(ctx context.Context, transfer *models.SignedTransfer) error
	Demo() bool
	Network() string
}
