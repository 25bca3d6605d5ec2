package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TradeEvent is published on trade.created and trade.status_changed
type TradeEvent struct {
	TradeID    uuid.UUID       `json:"trade_id"`
	OfferID    uuid.UUID       `json:"offer_id"`
	BuyerID    uuid.UUID       `json:"buyer_id"`
	SellerID   uuid.UUID       `json:"seller_id"`
	Amount     decimal.Decimal `json:"amount"`
	FiatAmount decimal.Decimal `json:"fiat_amount"`
	From       TradeStatus     `json:"from,omitempty"`
	Status     TradeStatus     `json:"status"`
	ActorID    *uuid.UUID      `json:"actor_id,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewTradeEvent builds an event snapshot of trade
func NewTradeEvent(trade *Trade, from TradeStatus, actor *uuid.UUID) TradeEvent {
	return TradeEvent{
		TradeID:    trade.ID,
		OfferID:    trade.OfferID,
		BuyerID:    trade.BuyerID,
		SellerID:   trade.SellerID,
		Amount:     trade.Amount,
		FiatAmount: trade.FiatAmount,
		From:       from,
		Status:     trade.Status,
		ActorID:    actor,
		OccurredAt: time.Now().UTC(),
	}
}

// BalanceEvent is published on balance.updated
type BalanceEvent struct {
	BalanceSnapshot
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}

// MessageEvent is published on trade.message
type MessageEvent struct {
	Message
	RecipientIDs []uuid.UUID `json:"recipient_ids"`
}

// KYCEvent is published on kyc.reviewed
type KYCEvent struct {
	VerificationID uuid.UUID `json:"verification_id"`
	UserID         uuid.UUID `json:"user_id"`
	Status         KYCStatus `json:"status"`
	Reason         string    `json:"reason,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// WithdrawalEvent is published on withdrawal.updated
type WithdrawalEvent struct {
	TransactionID uuid.UUID         `json:"transaction_id"`
	UserID        uuid.UUID         `json:"user_id"`
	Currency      Currency          `json:"currency"`
	Amount        decimal.Decimal   `json:"amount"`
	Status        TransactionStatus `json:"status"`
	TxHash        string            `json:"tx_hash,omitempty"`
	OccurredAt    time.Time         `json:"occurred_at"`
}
