package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExchangeRate is a reference price for a currency pair. The newest row per
// pair is the current rate.
type ExchangeRate struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	Pair      string          `json:"pair" db:"pair"`
	BuyRate   decimal.Decimal `json:"buy_rate" db:"buy_rate"`
	SellRate  decimal.Decimal `json:"sell_rate" db:"sell_rate"`
	Source    string          `json:"source" db:"source"`
	UpdatedBy *uuid.UUID      `json:"updated_by,omitempty" db:"updated_by"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

// SetRateRequest is the admin payload for publishing a new rate
type SetRateRequest struct {
	Pair     string          `json:"pair" validate:"omitempty,max=16"`
	BuyRate  decimal.Decimal `json:"buy_rate"`
	SellRate decimal.Decimal `json:"sell_rate"`
	Source   string          `json:"source" validate:"max=64"`
}
