package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TradeStatus is the lifecycle state of a trade
type TradeStatus string

const (
	TradeStatusPending        TradeStatus = "pending"
	TradeStatusPaymentPending TradeStatus = "payment_pending"
	TradeStatusPaymentMade    TradeStatus = "payment_made"
	TradeStatusCompleted      TradeStatus = "completed"
	TradeStatusDisputed       TradeStatus = "disputed"
	TradeStatusCancelled      TradeStatus = "cancelled"
	TradeStatusExpired        TradeStatus = "expired"
)

var tradeTransitions = map[TradeStatus][]TradeStatus{
	TradeStatusPending:        {TradeStatusPaymentPending, TradeStatusCancelled, TradeStatusExpired},
	TradeStatusPaymentPending: {TradeStatusPaymentMade, TradeStatusCancelled, TradeStatusExpired, TradeStatusDisputed},
	TradeStatusPaymentMade:    {TradeStatusCompleted, TradeStatusDisputed},
	TradeStatusDisputed:       {TradeStatusCompleted, TradeStatusCancelled},
}

// CanTransition reports whether from -> to is a legal edge
func CanTransition(from, to TradeStatus) bool {
	for _, s := range tradeTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// SourcesFor returns every status that may move to target
func SourcesFor(target TradeStatus) []TradeStatus {
	var out []TradeStatus
	for _, from := range []TradeStatus{
		TradeStatusPending,
		TradeStatusPaymentPending,
		TradeStatusPaymentMade,
		TradeStatusDisputed,
	} {
		if CanTransition(from, target) {
			out = append(out, from)
		}
	}
	return out
}

// Valid reports whether s is a known status
func (s TradeStatus) Valid() bool {
	switch s {
	case TradeStatusPending, TradeStatusPaymentPending, TradeStatusPaymentMade,
		TradeStatusCompleted, TradeStatusDisputed, TradeStatusCancelled, TradeStatusExpired:
		return true
	}
	return false
}

// Trade is an agreement between a buyer and a seller on a single offer
type Trade struct {
	ID               uuid.UUID       `json:"id" db:"id"`
	OfferID          uuid.UUID       `json:"offer_id" db:"offer_id"`
	BuyerID          uuid.UUID       `json:"buyer_id" db:"buyer_id"`
	SellerID         uuid.UUID       `json:"seller_id" db:"seller_id"`
	MakerID          uuid.UUID       `json:"maker_id" db:"maker_id"`
	Amount           decimal.Decimal `json:"amount" db:"amount"`
	Rate             decimal.Decimal `json:"rate" db:"rate"`
	FiatAmount       decimal.Decimal `json:"fiat_amount" db:"fiat_amount"`
	Fee              decimal.Decimal `json:"fee" db:"fee"`
	Status           TradeStatus     `json:"status" db:"status"`
	PaymentMethod    string          `json:"payment_method" db:"payment_method"`
	PaymentReference string          `json:"payment_reference" db:"payment_reference"`
	DisputeReason    string          `json:"dispute_reason" db:"dispute_reason"`
	DisputedBy       *uuid.UUID      `json:"disputed_by,omitempty" db:"disputed_by"`
	ResolutionNote   string          `json:"resolution_note" db:"resolution_note"`
	ResolvedBy       *uuid.UUID      `json:"resolved_by,omitempty" db:"resolved_by"`
	CancelReason     string          `json:"cancel_reason" db:"cancel_reason"`
	ExpiresAt        time.Time       `json:"expires_at" db:"expires_at"`
	PaidAt           *time.Time      `json:"paid_at,omitempty" db:"paid_at"`
	CompletedAt      *time.Time      `json:"completed_at,omitempty" db:"completed_at"`
	CancelledAt      *time.Time      `json:"cancelled_at,omitempty" db:"cancelled_at"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`
}

// IsParticipant reports whether userID is the buyer or the seller
func (t *Trade) IsParticipant(userID uuid.UUID) bool {
	return t.BuyerID == userID || t.SellerID == userID
}

// Counterparty returns the other side of the trade for userID
func (t *Trade) Counterparty(userID uuid.UUID) uuid.UUID {
	if t.BuyerID == userID {
		return t.SellerID
	}
	return t.BuyerID
}

// Actor is the authenticated caller performing an operation
type Actor struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// Settlement describes the balance movement attached to a transition
type Settlement string

const (
	SettlementNone Settlement = ""
	// SettlementRelease pays escrow to the buyer minus fee
	SettlementRelease Settlement = "release"
	// SettlementRefund returns escrow to the seller and capacity to the offer
	SettlementRefund Settlement = "refund"
)

// ExpiryGuard constrains a transition by the trade's deadline
type ExpiryGuard int

const (
	ExpiryAny ExpiryGuard = iota
	// ExpiryLive requires expires_at not before now; the deadline instant is still live
	ExpiryLive
	// ExpiryOverdue requires expires_at strictly before now
	ExpiryOverdue
)

// TradeTransition is a compare-and-set status change applied atomically
type TradeTransition struct {
	TradeID          uuid.UUID
	From             []TradeStatus
	To               TradeStatus
	Settlement       Settlement
	Expiry           ExpiryGuard
	Now              time.Time
	ExpiresAt        *time.Time
	PaymentReference string
	DisputeReason    string
	DisputedBy       *uuid.UUID
	ResolutionNote   string
	ResolvedBy       *uuid.UUID
	CancelReason     string
	// SystemMessage is posted into the trade chat in the same transaction
	SystemMessage string
}

// CreateTradeRequest is the payload for taking an offer
type CreateTradeRequest struct {
	OfferID uuid.UUID       `json:"offer_id" validate:"required"`
	Amount  decimal.Decimal `json:"amount"`
}

// MarkPaidRequest is sent by the buyer after the bank transfer
type MarkPaidRequest struct {
	PaymentReference string `json:"payment_reference" validate:"max=120"`
}

// CancelTradeRequest carries an optional reason
type CancelTradeRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// DisputeRequest opens a dispute
type DisputeRequest struct {
	Reason string `json:"reason" validate:"required,max=1000"`
}

// ResolveOutcome is the admin decision on a dispute
type ResolveOutcome string

const (
	ResolveRelease ResolveOutcome = "release"
	ResolveRefund  ResolveOutcome = "refund"
)

// ResolveDisputeRequest is the admin payload for closing a dispute
type ResolveDisputeRequest struct {
	Outcome ResolveOutcome `json:"outcome" validate:"required,oneof=release refund"`
	Note    string         `json:"note" validate:"required,max=1000"`
}

// TradeFilter narrows trade listings
type TradeFilter struct {
	Status TradeStatus `query:"status"`
	Pagination
}
