package apperrors

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrOfferNotFound        = errors.New("offer not found")
	ErrTradeNotFound        = errors.New("trade not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrKYCNotFound          = errors.New("kyc submission not found")
	ErrRateNotFound         = errors.New("exchange rate not found")
	ErrForbidden            = errors.New("forbidden")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrAccountDisabled      = errors.New("account is disabled")
	ErrTwoFactorRequired    = errors.New("two-factor code required")
	ErrInvalidTwoFactor     = errors.New("invalid two-factor code")
	ErrTwoFactorNotPending  = errors.New("two-factor setup not started or expired")
	ErrTwoFactorEnabled     = errors.New("two-factor already enabled")
	ErrTwoFactorDisabled    = errors.New("two-factor not enabled")
	ErrEmailTaken           = errors.New("email already registered")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrConflict             = errors.New("resource already exists")
	ErrValidation           = errors.New("validation failed")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidAddress       = errors.New("invalid TRON address")
	ErrInvalidTransition    = errors.New("invalid trade status transition")
	ErrTradeExpired         = errors.New("trade expired")
	ErrSelfTrade            = errors.New("cannot trade with your own offer")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrOfferUnavailable     = errors.New("offer is not available for this amount")
	ErrKYCRequired          = errors.New("kyc verification required")
	ErrAdminRequired        = errors.New("admin access required")
	ErrKYCAlreadyVerified   = errors.New("kyc already verified")
	ErrKYCPendingExists     = errors.New("a kyc submission is already pending review")
	ErrAlreadyRated         = errors.New("trade already rated")
	ErrTradeNotCompleted    = errors.New("trade is not completed")
	ErrBankDetailsMissing   = errors.New("bank details missing from profile")
	ErrDuplicateReference   = errors.New("deposit reference already used")
	ErrBelowMinimum         = errors.New("amount below minimum withdrawal")
	ErrWithdrawalNotPending = errors.New("withdrawal is not pending")
	ErrPayoutFailed         = errors.New("withdrawal payout failed")
	ErrPayoutUnconfirmed    = errors.New("withdrawal payout outcome unknown, left processing for reconciliation")
	ErrNotProcessing        = errors.New("withdrawal is not awaiting reconciliation")
)

