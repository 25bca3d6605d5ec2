package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxMessageLength bounds chat message content
const MaxMessageLength = 2000

// Message is a chat line inside a trade
type Message struct {
	ID             uuid.UUID `json:"id" db:"id"`
	TradeID        uuid.UUID `json:"trade_id" db:"trade_id"`
	SenderID       uuid.UUID `json:"sender_id" db:"sender_id"`
	SenderUsername string    `json:"sender_username,omitempty" db:"sender_username"`
	Content        string    `json:"content" db:"content"`
	IsSystem       bool      `json:"is_system" db:"is_system"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// SendMessageRequest is the payload for posting to a trade chat
type SendMessageRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}
