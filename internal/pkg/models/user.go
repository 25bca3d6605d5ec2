package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Currency is an ISO-like currency code used by balances and the ledger
type Currency string

const (
	CurrencyNGN  Currency = "NGN"
	CurrencyUSDT Currency = "USDT"
)

// Valid reports whether the currency is supported
func (c Currency) Valid() bool {
	return c == CurrencyNGN || c == CurrencyUSDT
}

// User represents an exchange account holder
type User struct {
	ID                uuid.UUID       `json:"id" db:"id"`
	Email             string          `json:"email" db:"email"`
	Username          string          `json:"username" db:"username"`
	PasswordHash      string          `json:"-" db:"password_hash"`
	FullName          string          `json:"full_name" db:"full_name"`
	Phone             string          `json:"phone" db:"phone"`
	IsAdmin           bool            `json:"is_admin" db:"is_admin"`
	KYCVerified       bool            `json:"kyc_verified" db:"kyc_verified"`
	IsActive          bool            `json:"is_active" db:"is_active"`
	NairaBalance      decimal.Decimal `json:"naira_balance" db:"naira_balance"`
	USDTBalance       decimal.Decimal `json:"usdt_balance" db:"usdt_balance"`
	EscrowUSDT        decimal.Decimal `json:"escrow_usdt" db:"escrow_usdt"`
	BankName          string          `json:"bank_name" db:"bank_name"`
	BankAccountNumber string          `json:"bank_account_number" db:"bank_account_number"`
	BankAccountName   string          `json:"bank_account_name" db:"bank_account_name"`
	TronAddress       string          `json:"tron_address" db:"tron_address"`
	DepositAddress    string          `json:"deposit_address" db:"deposit_address"`
	TOTPSecret        string          `json:"-" db:"totp_secret"`
	TOTPEnabled       bool            `json:"totp_enabled" db:"totp_enabled"`
	CreatedAt         time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at" db:"updated_at"`
}

// HasBankDetails reports whether naira withdrawals can be paid out
func (u *User) HasBankDetails() bool {
	return u.BankName != "" && u.BankAccountNumber != "" && u.BankAccountName != ""
}

// Balance returns the spendable balance for a currency
func (u *User) Balance(currency Currency) decimal.Decimal {
	if currency == CurrencyNGN {
		return u.NairaBalance
	}
	return u.USDTBalance
}

// PublicProfile is what other users can see about an account
type PublicProfile struct {
	ID              uuid.UUID     `json:"id"`
	Username        string        `json:"username"`
	KYCVerified     bool          `json:"kyc_verified"`
	CompletedTrades int           `json:"completed_trades"`
	Rating          RatingSummary `json:"rating"`
	JoinedAt        time.Time     `json:"joined_at"`
}

// BalanceSnapshot is a user's balances at a point in time
type BalanceSnapshot struct {
	UserID       uuid.UUID       `json:"user_id" db:"id"`
	NairaBalance decimal.Decimal `json:"naira_balance" db:"naira_balance"`
	USDTBalance  decimal.Decimal `json:"usdt_balance" db:"usdt_balance"`
	EscrowUSDT   decimal.Decimal `json:"escrow_usdt" db:"escrow_usdt"`
}

// RegisterRequest is the payload for creating an account
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,alphanum,min=3,max=32"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"max=120"`
	Phone    string `json:"phone" validate:"omitempty,e164"`
}

// LoginRequest is the payload for password login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	TOTPCode string `json:"totp_code" validate:"omitempty,numeric,len=6"`
}

// AuthResponse is returned after register or login
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	User      *User  `json:"user"`
}

// UpdateProfileRequest carries optional profile changes
type UpdateProfileRequest struct {
	FullName          *string `json:"full_name" validate:"omitempty,max=120"`
	Phone             *string `json:"phone" validate:"omitempty,e164"`
	BankName          *string `json:"bank_name" validate:"omitempty,max=80"`
	BankAccountNumber *string `json:"bank_account_number" validate:"omitempty,numeric,len=10"`
	BankAccountName   *string `json:"bank_account_name" validate:"omitempty,max=120"`
	TronAddress       *string `json:"tron_address" validate:"omitempty,len=34"`
}

// TwoFactorSetup is returned when a user starts enrolling an authenticator app
type TwoFactorSetup struct {
	Secret string `json:"secret"`
	URL    string `json:"otpauth_url"`
}

// TwoFactorCodeRequest carries a TOTP code
type TwoFactorCodeRequest struct {
	Code string `json:"code" validate:"required,numeric,len=6"`
}

// AdjustBalanceRequest is an admin credit or debit; negative amounts debit
type AdjustBalanceRequest struct {
	Currency Currency        `json:"currency" validate:"required,oneof=NGN USDT"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note" validate:"required,max=255"`
}

// SetFlagRequest toggles a boolean account attribute
type SetFlagRequest struct {
	Value bool `json:"value"`
}

// UserFilter narrows admin user listings
type UserFilter struct {
	Search string
	Pagination
}

// BalanceAdjustment is a validated admin balance change
type BalanceAdjustment struct {
	UserID   uuid.UUID
	AdminID  uuid.UUID
	Currency Currency
	Amount   decimal.Decimal
	Note     string
	Now      time.Time
}

// TradeStats summarises a user's trading history for their public profile
type TradeStats struct {
	CompletedTrades int             `db:"completed_trades"`
	RatingAverage   decimal.Decimal `db:"rating_average"`
	RatingCount     int             `db:"rating_count"`
}
