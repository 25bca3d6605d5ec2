package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rating is feedback left by one trade participant for the other
type Rating struct {
	ID            uuid.UUID `json:"id" db:"id"`
	TradeID       uuid.UUID `json:"trade_id" db:"trade_id"`
	RaterID       uuid.UUID `json:"rater_id" db:"rater_id"`
	RateeID       uuid.UUID `json:"ratee_id" db:"ratee_id"`
	RaterUsername string    `json:"rater_username,omitempty" db:"rater_username"`
	Score         int       `json:"score" db:"score"`
	Comment       string    `json:"comment" db:"comment"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// RatingSummary aggregates a user's received ratings
type RatingSummary struct {
	Average decimal.Decimal `json:"average" db:"average"`
	Count   int             `json:"count" db:"count"`
}

// RateTradeRequest is the payload for rating a counterparty
type RateTradeRequest struct {
	Score   int    `json:"score" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=500"`
}

// UserRatings is a user's received feedback with its aggregate
type UserRatings struct {
	Summary RatingSummary `json:"summary"`
	Ratings []*Rating     `json:"ratings"`
}
