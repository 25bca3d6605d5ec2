package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry
type TransactionType string

const (
	TransactionDeposit         TransactionType = "deposit"
	TransactionWithdrawal      TransactionType = "withdrawal"
	TransactionTradeEscrow     TransactionType = "trade_escrow"
	TransactionTradeRefund     TransactionType = "trade_refund"
	TransactionTradeRelease    TransactionType = "trade_release"
	TransactionTradeCredit     TransactionType = "trade_credit"
	TransactionFee             TransactionType = "fee"
	TransactionAdminAdjustment TransactionType = "admin_adjustment"
)

// TransactionStatus is the processing state of a ledger entry
type TransactionStatus string

const (
	TransactionPending    TransactionStatus = "pending"
	TransactionProcessing TransactionStatus = "processing"
	TransactionCompleted  TransactionStatus = "completed"
	TransactionFailed     TransactionStatus = "failed"
	TransactionRejected   TransactionStatus = "rejected"
)

// Transaction is one row of the balance ledger. Type decides the direction
// and Amount is positive, except admin adjustments which carry their sign.
type Transaction struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	UserID      uuid.UUID         `json:"user_id" db:"user_id"`
	TradeID     *uuid.UUID        `json:"trade_id,omitempty" db:"trade_id"`
	Type        TransactionType   `json:"type" db:"type"`
	Currency    Currency          `json:"currency" db:"currency"`
	Amount      decimal.Decimal   `json:"amount" db:"amount"`
	Status      TransactionStatus `json:"status" db:"status"`
	Reference   string            `json:"reference" db:"reference"`
	Destination string            `json:"destination" db:"destination"`
	TxHash      string            `json:"tx_hash" db:"tx_hash"`
	Note        string            `json:"note" db:"note"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
}

// TransactionFilter narrows ledger listings
type TransactionFilter struct {
	Type     TransactionType `query:"type"`
	Currency Currency        `query:"currency"`
	Pagination
}

// WithdrawalRequest asks to move funds off the exchange
type WithdrawalRequest struct {
	Currency    Currency        `json:"currency" validate:"required,oneof=NGN USDT"`
	Amount      decimal.Decimal `json:"amount"`
	Destination string          `json:"destination" validate:"omitempty,max=64"`
	TOTPCode    string          `json:"totp_code" validate:"omitempty,numeric,len=6"`
}

// RejectRequest carries an admin rejection reason
type RejectRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// DepositCreditRequest is an admin-confirmed incoming deposit
type DepositCreditRequest struct {
	UserID    uuid.UUID       `json:"user_id" validate:"required"`
	Currency  Currency        `json:"currency" validate:"required,oneof=NGN USDT"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference" validate:"required,max=128"`
}

// DepositAddress is the on-chain address a user funds their USDT balance with
type DepositAddress struct {
	Address string `json:"address"`
	Network string `json:"network"`
	Demo    bool   `json:"demo"`
}

// SignedTransfer is an on-chain transfer that is built and signed but not
// necessarily broadcast. Payload is the serialized signed transaction.
type SignedTransfer struct {
	TxID    string
	Payload []byte
}

// ReconcileOutcome is the admin decision on a withdrawal stuck in processing
type ReconcileOutcome string

const (
	// ReconcileComplete records the payout as delivered
	ReconcileComplete ReconcileOutcome = "complete"
	// ReconcileFail closes the withdrawal as failed and refunds the user
	ReconcileFail ReconcileOutcome = "fail"
)

// ReconcileWithdrawalRequest resolves a processing withdrawal after the admin
// has checked the chain. TxHash overrides the hash stored at signing time.
type ReconcileWithdrawalRequest struct {
	Outcome ReconcileOutcome `json:"outcome" validate:"required,oneof=complete fail"`
	TxHash  string           `json:"tx_hash" validate:"omitempty,hexadecimal,len=64"`
	Note    string           `json:"note" validate:"required,max=500"`
}

// WithdrawalFilter narrows the admin withdrawal queue
type WithdrawalFilter struct {
	Status TransactionStatus `query:"status"`
	Pagination
}
