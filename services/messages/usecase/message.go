package usecase

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/constants"
	"github.com/piresc/nairaxchange/internal/pkg/logger"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/internal/utils"
)

// SendMessage posts to a trade chat. Participants can always write; admins
// only join once the trade is disputed.
func (uc *MessageUC) SendMessage(ctx context.Context, actor models.Actor, tradeID uuid.UUID, req *models.SendMessageRequest) (*models.Message, error) {
	content := utils.SanitizeText(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", apperrors.ErrValidation)
	}
	if utf8.RuneCountInString(content) > models.MaxMessageLength {
		return nil, fmt.Errorf("%w: content must be at most %d characters", apperrors.ErrValidation, models.MaxMessageLength)
	}

	trade, err := uc.msgRepo.GetTrade(ctx, tradeID)
	if err != nil {
		return nil, err
	}
	if !trade.IsParticipant(actor.UserID) && !(actor.IsAdmin && trade.Status == models.TradeStatusDisputed) {
		return nil, apperrors.ErrForbidden
	}

	msg := &models.Message{
		ID:        uuid.New(),
		TradeID:   trade.ID,
		SenderID:  actor.UserID,
		Content:   content,
		CreatedAt: uc.now(),
	}
	if err := uc.msgRepo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	event := models.MessageEvent{Message: *msg, RecipientIDs: recipients(trade, actor.UserID)}
	if err := uc.msgGW.PublishMessage(ctx, event); err != nil {
		uc.metrics.EventPublishFails.WithLabelValues(constants.SubjectTradeMessage).Inc()
		logger.WarnCtx(ctx, "Failed to publish message event",
			logger.UUID("trade_id", trade.ID),
			logger.Err(err))
	}
	return msg, nil
}

// ListMessages returns the chat oldest first. Admins can read any trade.
func (uc *MessageUC) ListMessages(ctx context.Context, actor models.Actor, tradeID uuid.UUID, page models.Pagination) ([]*models.Message, error) {
	trade, err := uc.msgRepo.GetTrade(ctx, tradeID)
	if err != nil {
		return nil, err
	}
	if !trade.IsParticipant(actor.UserID) && !actor.IsAdmin {
		return nil, apperrors.ErrForbidden
	}
	return uc.msgRepo.ListMessages(ctx, tradeID, page)
}

func recipients(trade *models.Trade, senderID uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, 2)
	for _, id := range []uuid.UUID{trade.BuyerID, trade.SellerID} {
		if id != senderID {
			out = append(out, id)
		}
	}
	return out
}
