package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/services/messages"
)

// MessageRepo implements messages.MessageRepo on Postgres
type MessageRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(cfg *models.Config, db *sqlx.DB) messages.MessageRepo {
	return &MessageRepo{cfg: cfg, db: db}
}

// GetTrade loads just enough of the trade to authorise chat access
func (r *MessageRepo) GetTrade(ctx context.Context, tradeID uuid.UUID) (*models.Trade, error) {
	var trade models.Trade
	err := r.db.GetContext(ctx, &trade,
		`SELECT id, buyer_id, seller_id, status FROM trades WHERE id = $1`, tradeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrTradeNotFound
		}
		return nil, fmt.Errorf("failed to get trade: %w", err)
	}
	return &trade, nil
}

// CreateMessage stores a user-authored chat line
func (r *MessageRepo) CreateMessage(ctx context.Context, msg *models.Message) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO messages (id, trade_id, sender_id, content, is_system, created_at)
		VALUES ($1, $2, $3, $4, FALSE, $5)`,
		msg.ID, msg.TradeID, msg.SenderID, msg.Content, msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// ListMessages returns a trade's chat oldest first. System lines have no sender.
func (r *MessageRepo) ListMessages(ctx context.Context, tradeID uuid.UUID, page models.Pagination) ([]*models.Message, error) {
	page = page.Normalize()
	out := []*models.Message{}
	err := r.db.SelectContext(ctx, &out, `
		SELECT m.id, m.trade_id, m.sender_id, COALESCE(u.username, '') AS sender_username,
			m.content, m.is_system, m.created_at
		FROM messages m
		LEFT JOIN users u ON u.id = m.sender_id
		WHERE m.trade_id = $1
		ORDER BY m.created_at ASC, m.id ASC
		LIMIT $2 OFFSET $3`,
		tradeID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return out, nil
}
