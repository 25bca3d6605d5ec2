package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OfferType is the maker's side of the offer
type OfferType string

const (
	// OfferTypeBuy means the maker buys USDT and pays naira
	OfferTypeBuy OfferType = "buy"
	// OfferTypeSell means the maker sells USDT and receives naira
	OfferTypeSell OfferType = "sell"
)

// Offer is a posted intent to buy or sell USDT at a stated rate
type Offer struct {
	ID                   uuid.UUID       `json:"id" db:"id"`
	UserID               uuid.UUID       `json:"user_id" db:"user_id"`
	MakerUsername        string          `json:"maker_username,omitempty" db:"maker_username"`
	Type                 OfferType       `json:"type" db:"type"`
	Rate                 decimal.Decimal `json:"rate" db:"rate"`
	MinAmount            decimal.Decimal `json:"min_amount" db:"min_amount"`
	MaxAmount            decimal.Decimal `json:"max_amount" db:"max_amount"`
	AvailableAmount      decimal.Decimal `json:"available_amount" db:"available_amount"`
	PaymentMethod        string          `json:"payment_method" db:"payment_method"`
	Terms                string          `json:"terms" db:"terms"`
	PaymentWindowMinutes int             `json:"payment_window_minutes" db:"payment_window_minutes"`
	AutoAccept           bool            `json:"auto_accept" db:"auto_accept"`
	IsActive             bool            `json:"is_active" db:"is_active"`
	CreatedAt            time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at" db:"updated_at"`
}

// Parties returns (buyer, seller) for a trade taken on this offer by taker
func (o *Offer) Parties(takerID uuid.UUID) (buyerID, sellerID uuid.UUID) {
	if o.Type == OfferTypeSell {
		return takerID, o.UserID
	}
	return o.UserID, takerID
}

// CreateOfferRequest is the payload for posting an offer
type CreateOfferRequest struct {
	Type                 OfferType       `json:"type" validate:"required,oneof=buy sell"`
	Rate                 decimal.Decimal `json:"rate"`
	MinAmount            decimal.Decimal `json:"min_amount"`
	MaxAmount            decimal.Decimal `json:"max_amount"`
	AvailableAmount      decimal.Decimal `json:"available_amount"`
	PaymentMethod        string          `json:"payment_method" validate:"required,max=64"`
	Terms                string          `json:"terms" validate:"max=1000"`
	PaymentWindowMinutes int             `json:"payment_window_minutes" validate:"omitempty,min=5,max=180"`
	AutoAccept           *bool           `json:"auto_accept"`
}

// UpdateOfferRequest carries optional offer changes
type UpdateOfferRequest struct {
	Rate                 *decimal.Decimal `json:"rate"`
	MinAmount            *decimal.Decimal `json:"min_amount"`
	MaxAmount            *decimal.Decimal `json:"max_amount"`
	AvailableAmount      *decimal.Decimal `json:"available_amount"`
	PaymentMethod        *string          `json:"payment_method" validate:"omitempty,max=64"`
	Terms                *string          `json:"terms" validate:"omitempty,max=1000"`
	PaymentWindowMinutes *int             `json:"payment_window_minutes" validate:"omitempty,min=5,max=180"`
	AutoAccept           *bool            `json:"auto_accept"`
	IsActive             *bool            `json:"is_active"`
}

// OfferFilter narrows the public offer book
type OfferFilter struct {
	Type          OfferType        `query:"type"`
	Amount        *decimal.Decimal `query:"-"`
	PaymentMethod string           `query:"payment_method"`
	Pagination
}
