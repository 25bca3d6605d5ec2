package wallet

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/models"
)

// WalletRepo defines the interface for ledger and balance data access
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/nairaxchange/services/wallet WalletRepo
type WalletRepo interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	// ClaimTOTPStep refuses a TOTP step the user already spent
	ClaimTOTPStep(ctx context.Context, userID uuid.UUID, step int64) error
	ListTransactions(ctx context.Context, userID uuid.UUID, filter models.TransactionFilter) ([]*models.Transaction, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error)

	// SaveDepositAddress stores addr unless the user already has one and
	// returns the address that is persisted
	SaveDepositAddress(ctx context.Context, userID uuid.UUID, addr string) (string, error)

	// CreateWithdrawal debits the balance and inserts the pending row atomically
	CreateWithdrawal(ctx context.Context, tx *models.Transaction) (*models.BalanceSnapshot, error)
	ListWithdrawals(ctx context.Context, status models.TransactionStatus, page models.Pagination) ([]*models.Transaction, error)

	// ClaimWithdrawal moves a pending withdrawal to processing so only one
	// approver pays it out
	ClaimWithdrawal(ctx context.Context, id uuid.UUID, now time.Time) (*models.Transaction, error)
	// SetWithdrawalTxHash stores the signed transfer id on a processing
	// withdrawal before it is broadcast
	SetWithdrawalTxHash(ctx context.Context, id uuid.UUID, txHash string, now time.Time) (*models.Transaction, error)
	// CompleteWithdrawal marks a processing withdrawal paid; an empty txHash
	// keeps the stored one
	CompleteWithdrawal(ctx context.Context, id uuid.UUID, txHash string, now time.Time) (*models.Transaction, error)

	// RefundWithdrawal closes a pending or processing withdrawal with status
	// and credits the amount back
	RefundWithdrawal(ctx context.Context, id uuid.UUID, status models.TransactionStatus, note string, now time.Time) (*models.Transaction, *models.BalanceSnapshot, error)

	// CreditDeposit records a completed deposit and credits the balance
	CreditDeposit(ctx context.Context, tx *models.Transaction) (*models.BalanceSnapshot, error)
}
