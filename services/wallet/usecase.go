package wallet

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/models"
)

// WalletUC defines deposit, withdrawal and ledger operations
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/nairaxchange/services/wallet WalletUC
type WalletUC interface {
	ListTransactions(ctx context.Context, actor models.Actor, filter models.TransactionFilter) ([]*models.Transaction, error)
	GetDepositAddress(ctx context.Context, actor models.Actor) (*models.DepositAddress, error)
	RequestWithdrawal(ctx context.Context, actor models.Actor, req *models.WithdrawalRequest) (*models.Transaction, error)

	ListWithdrawals(ctx context.Context, actor models.Actor, filter models.WithdrawalFilter) ([]*models.Transaction, error)
	ApproveWithdrawal(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Transaction, error)
	RejectWithdrawal(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.RejectRequest) (*models.Transaction, error)
	ReconcileWithdrawal(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.ReconcileWithdrawalRequest) (*models.Transaction, error)
	CreditDeposit(ctx context.Context, actor models.Actor, req *models.DepositCreditRequest) (*models.Transaction, error)
}
