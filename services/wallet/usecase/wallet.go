package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/constants"
	"github.com/piresc/nairaxchange/internal/pkg/logger"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/internal/pkg/twofactor"
	walletpkg "github.com/piresc/nairaxchange/internal/pkg/wallet"
	"github.com/piresc/nairaxchange/internal/utils"
	"github.com/shopspring/decimal"
)

// decimal places each currency is stored with
var currencyPlaces = map[models.Currency]int32{
	models.CurrencyNGN:  2,
	models.CurrencyUSDT: 6,
}

// ListTransactions returns the caller's ledger
func (uc *WalletUC) ListTransactions(ctx context.Context, actor models.Actor, filter models.TransactionFilter) ([]*models.Transaction, error) {
	if filter.Currency != "" && !filter.Currency.Valid() {
		return nil, fmt.Errorf("%w: currency must be NGN or USDT", apperrors.ErrValidation)
	}
	return uc.walletRepo.ListTransactions(ctx, actor.UserID, filter)
}

// GetDepositAddress returns the caller's TRON deposit address, creating it on
// first use
func (uc *WalletUC) GetDepositAddress(ctx context.Context, actor models.Actor) (*models.DepositAddress, error) {
	user, err := uc.walletRepo.GetUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	addr := user.DepositAddress
	if addr == "" {
		generated, err := uc.chain.DepositAddress(user.ID)
		if err != nil {
			return nil, err
		}
		addr, err = uc.walletRepo.SaveDepositAddress(ctx, user.ID, generated)
		if err != nil {
			return nil, err
		}
		logger.InfoCtx(ctx, "Deposit address assigned",
			logger.UUID("user_id", user.ID),
			logger.String("address", addr))
	}

	return &models.DepositAddress{
		Address: addr,
		Network: uc.chain.Network(),
		Demo:    uc.chain.Demo(),
	}, nil
}

// RequestWithdrawal debits the caller and queues the payout for review
func (uc *WalletUC) RequestWithdrawal(ctx context.Context, actor models.Actor, req *models.WithdrawalRequest) (*models.Transaction, error) {
	if err := validateAmount(req.Currency, req.Amount); err != nil {
		return nil, err
	}
	if minimum := uc.cfg.Wallet.MinimumFor(req.Currency); req.Amount.LessThan(minimum) {
		return nil, fmt.Errorf("%w: minimum is %s %s", apperrors.ErrBelowMinimum, minimum.String(), req.Currency)
	}

	user, err := uc.walletRepo.GetUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}
	if !user.KYCVerified {
		return nil, apperrors.ErrKYCRequired
	}

	destination, err := withdrawalDestination(user, req)
	if err != nil {
		return nil, err
	}

	if user.TOTPEnabled {
		if req.TOTPCode == "" {
			return nil, apperrors.ErrTwoFactorRequired
		}
		step, ok := twofactor.Match(req.TOTPCode, user.TOTPSecret, uc.now())
		if !ok {
			return nil, apperrors.ErrInvalidTwoFactor
		}
		if err := uc.walletRepo.ClaimTOTPStep(ctx, user.ID, step); err != nil {
			return nil, err
		}
	}

	entry := &models.Transaction{
		UserID:      user.ID,
		Currency:    req.Currency,
		Amount:      req.Amount,
		Destination: destination,
		CreatedAt:   uc.now(),
	}
	snapshot, err := uc.walletRepo.CreateWithdrawal(ctx, entry)
	if err != nil {
		return nil, err
	}

	uc.metrics.Withdrawals.WithLabelValues(string(entry.Currency), string(entry.Status)).Inc()
	logger.InfoCtx(ctx, "Withdrawal requested",
		logger.UUID("transaction_id", entry.ID),
		logger.UUID("user_id", user.ID),
		logger.String("currency", string(entry.Currency)),
		logger.Decimal("amount", entry.Amount))

	uc.publishWithdrawal(ctx, entry)
	uc.publishBalance(ctx, snapshot, string(models.TransactionWithdrawal))
	return entry, nil
}

// ListWithdrawals returns the admin queue for one status, pending by default
func (uc *WalletUC) ListWithdrawals(ctx context.Context, actor models.Actor, filter models.WithdrawalFilter) ([]*models.Transaction, error) {
	if !actor.IsAdmin {
		return nil, apperrors.ErrAdminRequired
	}
	status := filter.Status
	if status == "" {
		status = models.TransactionPending
	}
	if status != models.TransactionPending && status != models.TransactionProcessing {
		return nil, fmt.Errorf("%w: status must be pending or processing", apperrors.ErrValidation)
	}
	return uc.walletRepo.ListWithdrawals(ctx, status, filter.Pagination)
}

// ApproveWithdrawal pays out a pending withdrawal. USDT is signed once, its id
// stored on the row, then broadcast; naira payouts are made off-platform
// before approval. Only a transfer the node refused is refunded. When the
// broadcast outcome is unknown the row stays processing for reconciliation.
func (uc *WalletUC) ApproveWithdrawal(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Transaction, error) {
	if !actor.IsAdmin {
		return nil, apperrors.ErrAdminRequired
	}

	claimed, err := uc.walletRepo.ClaimWithdrawal(ctx, id, uc.now())
	if err != nil {
		return nil, err
	}

	var txHash string
	if claimed.Currency == models.CurrencyUSDT {
		txHash, err = uc.payOut(ctx, claimed)
		if err != nil {
			return nil, err
		}
	}

	completed, err := uc.walletRepo.CompleteWithdrawal(ctx, id, txHash, uc.now())
	if err != nil {
		logger.ErrorCtx(ctx, "Withdrawal paid but not marked completed",
			logger.UUID("transaction_id", claimed.ID),
			logger.String("tx_hash", txHash),
			logger.Err(err))
		return nil, err
	}

	uc.metrics.Withdrawals.WithLabelValues(string(completed.Currency), string(completed.Status)).Inc()
	logger.InfoCtx(ctx, "Withdrawal approved",
		logger.UUID("transaction_id", completed.ID),
		logger.UUID("admin_id", actor.UserID),
		logger.String("tx_hash", txHash))

	uc.publishWithdrawal(ctx, completed)
	return completed, nil
}

// payOut signs and broadcasts a claimed USDT withdrawal and returns its tx id
func (uc *WalletUC) payOut(ctx context.Context, claimed *models.Transaction) (string, error) {
	transfer, err := uc.chain.PrepareUSDT(ctx, claimed.Destination, claimed.Amount)
	if err != nil {
		logger.ErrorCtx(ctx, "USDT payout could not be signed",
			logger.UUID("transaction_id", claimed.ID),
			logger.String("destination", claimed.Destination),
			logger.Err(err))
		return "", uc.failWithdrawal(ctx, claimed, err)
	}

	if _, err := uc.walletRepo.SetWithdrawalTxHash(ctx, claimed.ID, transfer.TxID, uc.now()); err != nil {
		return "", err
	}

	if err := uc.chain.BroadcastUSDT(ctx, transfer); err != nil {
		if errors.Is(err, walletpkg.ErrBroadcastRejected) {
			logger.ErrorCtx(ctx, "USDT payout rejected",
				logger.UUID("transaction_id", claimed.ID),
				logger.String("tx_hash", transfer.TxID),
				logger.Err(err))
			return "", uc.failWithdrawal(ctx, claimed, err)
		}
		logger.ErrorCtx(ctx, "USDT payout outcome unknown",
			logger.UUID("transaction_id", claimed.ID),
			logger.String("tx_hash", transfer.TxID),
			logger.Err(err))
		return "", fmt.Errorf("%w: %v", apperrors.ErrPayoutUnconfirmed, err)
	}
	return transfer.TxID, nil
}

func (uc *WalletUC) failWithdrawal(ctx context.Context, claimed *models.Transaction, cause error) error {
	failed, snapshot, err := uc.walletRepo.RefundWithdrawal(ctx, claimed.ID, models.TransactionFailed,
		"payout failed", uc.now())
	if err != nil {
		return fmt.Errorf("%w: refund after failed payout: %v", apperrors.ErrPayoutFailed, err)
	}

	uc.metrics.Withdrawals.WithLabelValues(string(failed.Currency), string(failed.Status)).Inc()
	uc.publishWithdrawal(ctx, failed)
	uc.publishBalance(ctx, snapshot, string(models.TransactionWithdrawal))
	return fmt.Errorf("%w: %v", apperrors.ErrPayoutFailed, cause)
}

// ReconcileWithdrawal settles a withdrawal left processing once an admin has
// checked the chain: complete keeps or records the tx hash, fail refunds.
func (uc *WalletUC) ReconcileWithdrawal(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.ReconcileWithdrawalRequest) (*models.Transaction, error) {
	if !actor.IsAdmin {
		return nil, apperrors.ErrAdminRequired
	}

	entry, err := uc.walletRepo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.Type != models.TransactionWithdrawal {
		return nil, apperrors.ErrTransactionNotFound
	}
	if entry.Status != models.TransactionProcessing {
		return nil, fmt.Errorf("%w: status is %s", apperrors.ErrNotProcessing, entry.Status)
	}

	note := utils.SanitizeText(req.Note)
	var (
		settled  *models.Transaction
		snapshot *models.BalanceSnapshot
	)
	switch req.Outcome {
	case models.ReconcileComplete:
		if entry.Currency == models.CurrencyUSDT && req.TxHash == "" && entry.TxHash == "" {
			return nil, fmt.Errorf("%w: tx_hash is required, none was stored for this withdrawal", apperrors.ErrValidation)
		}
		settled, err = uc.walletRepo.CompleteWithdrawal(ctx, id, req.TxHash, uc.now())
	case models.ReconcileFail:
		settled, snapshot, err = uc.walletRepo.RefundWithdrawal(ctx, id, models.TransactionFailed, note, uc.now())
	default:
		return nil, fmt.Errorf("%w: outcome must be complete or fail", apperrors.ErrValidation)
	}
	if err != nil {
		return nil, err
	}

	uc.metrics.Withdrawals.WithLabelValues(string(settled.Currency), string(settled.Status)).Inc()
	logger.InfoCtx(ctx, "Withdrawal reconciled",
		logger.UUID("transaction_id", settled.ID),
		logger.UUID("admin_id", actor.UserID),
		logger.String("status", string(settled.Status)),
		logger.String("tx_hash", settled.TxHash),
		logger.String("note", note))

	uc.publishWithdrawal(ctx, settled)
	uc.publishBalance(ctx, snapshot, string(models.TransactionWithdrawal))
	return settled, nil
}

// RejectWithdrawal refunds a pending withdrawal
func (uc *WalletUC) RejectWithdrawal(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.RejectRequest) (*models.Transaction, error) {
	if !actor.IsAdmin {
		return nil, apperrors.ErrAdminRequired
	}

	rejected, snapshot, err := uc.walletRepo.RefundWithdrawal(ctx, id, models.TransactionRejected,
		utils.SanitizeText(req.Reason), uc.now())
	if err != nil {
		return nil, err
	}

	uc.metrics.Withdrawals.WithLabelValues(string(rejected.Currency), string(rejected.Status)).Inc()
	logger.InfoCtx(ctx, "Withdrawal rejected",
		logger.UUID("transaction_id", rejected.ID),
		logger.UUID("admin_id", actor.UserID))

	uc.publishWithdrawal(ctx, rejected)
	uc.publishBalance(ctx, snapshot, string(models.TransactionWithdrawal))
	return rejected, nil
}

// CreditDeposit credits a confirmed incoming deposit
func (uc *WalletUC) CreditDeposit(ctx context.Context, actor models.Actor, req *models.DepositCreditRequest) (*models.Transaction, error) {
	if !actor.IsAdmin {
		return nil, apperrors.ErrAdminRequired
	}
	if err := validateAmount(req.Currency, req.Amount); err != nil {
		return nil, err
	}

	entry := &models.Transaction{
		UserID:    req.UserID,
		Currency:  req.Currency,
		Amount:    req.Amount,
		Reference: req.Reference,
		Note:      "credited by admin:" + actor.UserID.String(),
		CreatedAt: uc.now(),
	}
	snapshot, err := uc.walletRepo.CreditDeposit(ctx, entry)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Deposit credited",
		logger.UUID("transaction_id", entry.ID),
		logger.UUID("user_id", entry.UserID),
		logger.String("reference", entry.Reference),
		logger.Decimal("amount", entry.Amount))

	uc.publishBalance(ctx, snapshot, string(models.TransactionDeposit))
	return entry, nil
}

func validateAmount(currency models.Currency, amount decimal.Decimal) error {
	places, ok := currencyPlaces[currency]
	if !ok {
		return fmt.Errorf("%w: currency must be NGN or USDT", apperrors.ErrValidation)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrInvalidAmount)
	}
	if !amount.Equal(amount.Truncate(places)) {
		return fmt.Errorf("%w: %s supports at most %d decimal places", apperrors.ErrInvalidAmount, currency, places)
	}
	return nil
}

func withdrawalDestination(user *models.User, req *models.WithdrawalRequest) (string, error) {
	if req.Currency == models.CurrencyNGN {
		if !user.HasBankDetails() {
			return "", apperrors.ErrBankDetailsMissing
		}
		return fmt.Sprintf("%s %s (%s)", user.BankName, user.BankAccountNumber, user.BankAccountName), nil
	}

	addr := req.Destination
	if addr == "" {
		addr = user.TronAddress
	}
	if addr == "" {
		return "", fmt.Errorf("%w: no destination given and none on profile", apperrors.ErrInvalidAddress)
	}
	if err := walletpkg.ValidateAddress(addr); err != nil {
		return "", err
	}
	return addr, nil
}

func (uc *WalletUC) publishWithdrawal(ctx context.Context, entry *models.Transaction) {
	event := models.WithdrawalEvent{
		TransactionID: entry.ID,
		UserID:        entry.UserID,
		Currency:      entry.Currency,
		Amount:        entry.Amount,
		Status:        entry.Status,
		TxHash:        entry.TxHash,
		OccurredAt:    uc.now(),
	}
	if err := uc.walletGW.PublishWithdrawalUpdated(ctx, event); err != nil {
		uc.publishFailed(ctx, constants.SubjectWithdrawalUpdated, err)
	}
}

func (uc *WalletUC) publishBalance(ctx context.Context, snapshot *models.BalanceSnapshot, reason string) {
	if snapshot == nil {
		return
	}
	event := models.BalanceEvent{BalanceSnapshot: *snapshot, Reason: reason, OccurredAt: uc.now()}
	if err := uc.walletGW.PublishBalanceUpdated(ctx, event); err != nil {
		uc.publishFailed(ctx, constants.SubjectBalanceUpdated, err)
	}
}

func (uc *WalletUC) publishFailed(ctx context.Context, subject string, err error) {
	uc.metrics.EventPublishFails.WithLabelValues(subject).Inc()
	logger.WarnCtx(ctx, "Failed to publish event", logger.String("subject", subject), logger.Err(err))
}
