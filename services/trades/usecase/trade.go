package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/logger"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CreateTrade opens a trade against an offer and escrows the seller's USDT
func (uc *TradeUC) CreateTrade(ctx context.Context, actor models.Actor, req *models.CreateTradeRequest) (*models.Trade, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrInvalidAmount)
	}

	offer, err := uc.repo.GetOffer(ctx, req.OfferID)
	if err != nil {
		return nil, err
	}
	if offer.UserID == actor.UserID {
		return nil, apperrors.ErrSelfTrade
	}
	if !offer.IsActive || req.Amount.GreaterThan(offer.AvailableAmount) {
		return nil, apperrors.ErrOfferUnavailable
	}
	if req.Amount.LessThan(offer.MinAmount) || req.Amount.GreaterThan(offer.MaxAmount) {
		return nil, fmt.Errorf("%w: amount must be between %s and %s USDT",
			apperrors.ErrInvalidAmount, offer.MinAmount.String(), offer.MaxAmount.String())
	}

	now := uc.now()
	buyerID, sellerID := offer.Parties(actor.UserID)
	trade := &models.Trade{
		ID:            uuid.New(),
		OfferID:       offer.ID,
		BuyerID:       buyerID,
		SellerID:      sellerID,
		MakerID:       offer.UserID,
		Amount:        req.Amount,
		Rate:          offer.Rate,
		FiatAmount:    req.Amount.Mul(offer.Rate).Round(2),
		Fee:           req.Amount.Mul(uc.cfg.Trade.FeePercent).Div(hundred).Round(6),
		PaymentMethod: offer.PaymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if offer.AutoAccept {
		trade.Status = models.TradeStatusPaymentPending
		trade.ExpiresAt = now.Add(uc.paymentWindow(offer))
	} else {
		trade.Status = models.TradeStatusPending
		trade.ExpiresAt = now.Add(uc.cfg.Trade.AcceptWindow())
	}

	if err := uc.repo.CreateTrade(ctx, trade); err != nil {
		return nil, err
	}

	uc.metrics.TradesCreated.Inc()
	logger.InfoCtx(ctx, "Trade created",
		logger.UUID("trade_id", trade.ID),
		logger.UUID("offer_id", trade.OfferID),
		logger.Decimal("amount", trade.Amount),
		logger.String("status", string(trade.Status)))

	actorID := actor.UserID
	uc.publish(ctx, "trade.created", func() error {
		return uc.gw.PublishTradeCreated(ctx, models.NewTradeEvent(trade, "", &actorID))
	})
	uc.publishBalances(ctx, string(models.TransactionTradeEscrow), trade.SellerID)

	return trade, nil
}

// GetTrade returns a trade visible to participants and admins
func (uc *TradeUC) GetTrade(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Trade, error) {
	trade, err := uc.repo.GetTradeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin && !trade.IsParticipant(actor.UserID) {
		return nil, apperrors.ErrForbidden
	}
	return trade, nil
}

// ListTrades lists the caller's trades
func (uc *TradeUC) ListTrades(ctx context.Context, actor models.Actor, filter models.TradeFilter) ([]*models.Trade, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, filter.Status)
	}
	return uc.repo.ListTradesForUser(ctx, actor.UserID, filter)
}

// ListDisputed lists disputed trades for admins
func (uc *TradeUC) ListDisputed(ctx context.Context, page models.Pagination) ([]*models.Trade, error) {
	return uc.repo.ListDisputed(ctx, page)
}

// AcceptTrade lets the maker accept a pending trade and starts the payment window
func (uc *TradeUC) AcceptTrade(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Trade, error) {
	trade, err := uc.repo.GetTradeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trade.MakerID != actor.UserID {
		return nil, apperrors.ErrForbidden
	}
	if !models.CanTransition(trade.Status, models.TradeStatusPaymentPending) {
		return nil, invalidTransition(trade.Status, models.TradeStatusPaymentPending)
	}

	window := uc.cfg.Trade.PaymentWindow()
	if offer, err := uc.repo.GetOffer(ctx, trade.OfferID); err == nil {
		window = uc.paymentWindow(offer)
	}

	now := uc.now()
	expiresAt := now.Add(window)
	return uc.transition(ctx, actor, trade, models.TradeTransition{
		TradeID:       trade.ID,
		From:          []models.TradeStatus{models.TradeStatusPending},
		To:            models.TradeStatusPaymentPending,
		Expiry:        models.ExpiryLive,
		Now:           now,
		ExpiresAt:     &expiresAt,
		SystemMessage: fmt.Sprintf("Trade accepted. The buyer has %d minutes to send payment.", int(window.Minutes())),
	})
}

// MarkPaid records the buyer's bank transfer
func (uc *TradeUC) MarkPaid(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.MarkPaidRequest) (*models.Trade, error) {
	trade, err := uc.repo.GetTradeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trade.BuyerID != actor.UserID {
		return nil, apperrors.ErrForbidden
	}
	if !models.CanTransition(trade.Status, models.TradeStatusPaymentMade) {
		return nil, invalidTransition(trade.Status, models.TradeStatusPaymentMade)
	}

	return uc.transition(ctx, actor, trade, models.TradeTransition{
		TradeID:          trade.ID,
		From:             []models.TradeStatus{models.TradeStatusPaymentPending},
		To:               models.TradeStatusPaymentMade,
		Expiry:           models.ExpiryLive,
		Now:              uc.now(),
		PaymentReference: req.PaymentReference,
		SystemMessage:    "Buyer marked the payment as sent. Seller, confirm receipt before releasing.",
	})
}

// ReleaseTrade lets the seller release escrowed USDT to the buyer
func (uc *TradeUC) ReleaseTrade(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Trade, error) {
	trade, err := uc.repo.GetTradeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trade.SellerID != actor.UserID {
		return nil, apperrors.ErrForbidden
	}
	if !models.CanTransition(trade.Status, models.TradeStatusCompleted) || trade.Status == models.TradeStatusDisputed {
		return nil, invalidTransition(trade.Status, models.TradeStatusCompleted)
	}

	return uc.transition(ctx, actor, trade, models.TradeTransition{
		TradeID:       trade.ID,
		From:          []models.TradeStatus{models.TradeStatusPaymentMade},
		To:            models.TradeStatusCompleted,
		Settlement:    models.SettlementRelease,
		Now:           uc.now(),
		SystemMessage: "Seller released the USDT. Trade completed.",
	})
}

// CancelTrade cancels a trade and refunds the seller. Either party may cancel
// before acceptance; after that only the buyer may.
func (uc *TradeUC) CancelTrade(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.CancelTradeRequest) (*models.Trade, error) {
	trade, err := uc.repo.GetTradeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var from []models.TradeStatus
	switch actor.UserID {
	case trade.BuyerID:
		from = []models.TradeStatus{models.TradeStatusPending, models.TradeStatusPaymentPending}
	case trade.SellerID:
		from = []models.TradeStatus{models.TradeStatusPending}
	default:
		return nil, apperrors.ErrForbidden
	}
	if !containsStatus(from, trade.Status) {
		if trade.Status == models.TradeStatusPaymentPending {
			return nil, apperrors.ErrForbidden
		}
		return nil, invalidTransition(trade.Status, models.TradeStatusCancelled)
	}

	msg := "Trade cancelled. Escrowed USDT returned to the seller."
	if req.Reason != "" {
		msg = fmt.Sprintf("Trade cancelled: %s. Escrowed USDT returned to the seller.", req.Reason)
	}
	return uc.transition(ctx, actor, trade, models.TradeTransition{
		TradeID:       trade.ID,
		From:          from,
		To:            models.TradeStatusCancelled,
		Settlement:    models.SettlementRefund,
		Now:           uc.now(),
		CancelReason:  req.Reason,
		SystemMessage: msg,
	})
}

// DisputeTrade escalates a trade to an admin
func (uc *TradeUC) DisputeTrade(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.DisputeRequest) (*models.Trade, error) {
	trade, err := uc.repo.GetTradeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !trade.IsParticipant(actor.UserID) {
		return nil, apperrors.ErrForbidden
	}
	if !models.CanTransition(trade.Status, models.TradeStatusDisputed) {
		return nil, invalidTransition(trade.Status, models.TradeStatusDisputed)
	}

	role := "seller"
	if actor.UserID == trade.BuyerID {
		role = "buyer"
	}
	disputedBy := actor.UserID
	return uc.transition(ctx, actor, trade, models.TradeTransition{
		TradeID:       trade.ID,
		From:          []models.TradeStatus{models.TradeStatusPaymentPending, models.TradeStatusPaymentMade},
		To:            models.TradeStatusDisputed,
		Now:           uc.now(),
		DisputeReason: req.Reason,
		DisputedBy:    &disputedBy,
		SystemMessage: fmt.Sprintf("The %s opened a dispute: %s. An admin will review the trade.", role, req.Reason),
	})
}

// ResolveDispute closes a dispute by releasing to the buyer or refunding the seller
func (uc *TradeUC) ResolveDispute(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.ResolveDisputeRequest) (*models.Trade, error) {
	if !actor.IsAdmin {
		return nil, apperrors.ErrAdminRequired
	}
	trade, err := uc.repo.GetTradeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t := models.TradeTransition{
		TradeID:        trade.ID,
		From:           []models.TradeStatus{models.TradeStatusDisputed},
		Now:            uc.now(),
		ResolutionNote: req.Note,
	}
	resolver := actor.UserID
	t.ResolvedBy = &resolver

	switch req.Outcome {
	case models.ResolveRelease:
		t.To = models.TradeStatusCompleted
		t.Settlement = models.SettlementRelease
		t.SystemMessage = "Dispute resolved in favour of the buyer. USDT released."
	case models.ResolveRefund:
		t.To = models.TradeStatusCancelled
		t.Settlement = models.SettlementRefund
		t.SystemMessage = "Dispute resolved in favour of the seller. USDT refunded."
	default:
		return nil, fmt.Errorf("%w: outcome must be release or refund", apperrors.ErrValidation)
	}
	if trade.Status != models.TradeStatusDisputed {
		return nil, invalidTransition(trade.Status, t.To)
	}

	return uc.transition(ctx, actor, trade, t)
}

// ExpireOverdue expires trades whose acceptance or payment deadline passed
// and refunds their escrow, one trade per database transaction
func (uc *TradeUC) ExpireOverdue(ctx context.Context, now time.Time) (int, error) {
	expired := 0
	for {
		ids, err := uc.repo.ListOverdue(ctx, now, expiryBatchSize)
		if err != nil {
			return expired, err
		}

		moved := 0
		for _, id := range ids {
			trade, err := uc.repo.Transition(ctx, models.TradeTransition{
				TradeID:       id,
				From:          models.SourcesFor(models.TradeStatusExpired),
				To:            models.TradeStatusExpired,
				Settlement:    models.SettlementRefund,
				Expiry:        models.ExpiryOverdue,
				Now:           now,
				SystemMessage: "Trade expired. Escrowed USDT returned to the seller.",
			})
			if err != nil {
				if errors.Is(err, apperrors.ErrInvalidTransition) {
					continue
				}
				logger.ErrorCtx(ctx, "Failed to expire trade", logger.UUID("trade_id", id), logger.Err(err))
				continue
			}
			moved++
			uc.afterTransition(ctx, trade, "", nil)
		}
		expired += moved

		if len(ids) < expiryBatchSize || moved == 0 {
			break
		}
	}

	if expired > 0 {
		uc.metrics.TradesExpired.Add(float64(expired))
		logger.InfoCtx(ctx, "Expired overdue trades", logger.Int("count", expired))
	}
	return expired, nil
}

func (uc *TradeUC) transition(ctx context.Context, actor models.Actor, before *models.Trade, t models.TradeTransition) (*models.Trade, error) {
	trade, err := uc.repo.Transition(ctx, t)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Trade status changed",
		logger.UUID("trade_id", trade.ID),
		logger.String("from", string(before.Status)),
		logger.String("to", string(trade.Status)),
		logger.UUID("actor_id", actor.UserID))

	actorID := actor.UserID
	uc.afterTransition(ctx, trade, before.Status, &actorID)
	return trade, nil
}

// afterTransition records metrics and publishes events once the change is committed
func (uc *TradeUC) afterTransition(ctx context.Context, trade *models.Trade, from models.TradeStatus, actorID *uuid.UUID) {
	uc.metrics.TradeTransitions.WithLabelValues(string(trade.Status)).Inc()

	uc.publish(ctx, "trade.status_changed", func() error {
		return uc.gw.PublishTradeStatusChanged(ctx, models.NewTradeEvent(trade, from, actorID))
	})

	switch trade.Status {
	case models.TradeStatusCompleted:
		uc.metrics.ObserveRelease(trade.Amount)
		uc.publishBalances(ctx, string(models.TransactionTradeRelease), trade.SellerID, trade.BuyerID)
	case models.TradeStatusCancelled, models.TradeStatusExpired:
		uc.publishBalances(ctx, string(models.TransactionTradeRefund), trade.SellerID)
	}
}

func (uc *TradeUC) publishBalances(ctx context.Context, reason string, userIDs ...uuid.UUID) {
	snapshots, err := uc.repo.GetBalances(ctx, userIDs...)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load balances for event", logger.Err(err))
		return
	}
	now := uc.now()
	for _, s := range snapshots {
		event := models.BalanceEvent{BalanceSnapshot: s, Reason: reason, OccurredAt: now}
		uc.publish(ctx, "balance.updated", func() error {
			return uc.gw.PublishBalanceUpdated(ctx, event)
		})
	}
}

// publish logs and counts event failures; the database change already committed
func (uc *TradeUC) publish(ctx context.Context, subject string, fn func() error) {
	if err := fn(); err != nil {
		uc.metrics.EventPublishFails.WithLabelValues(subject).Inc()
		logger.WarnCtx(ctx, "Failed to publish event", logger.String("subject", subject), logger.Err(err))
	}
}

func (uc *TradeUC) paymentWindow(offer *models.Offer) time.Duration {
	if offer.PaymentWindowMinutes > 0 {
		return time.Duration(offer.PaymentWindowMinutes) * time.Minute
	}
	return uc.cfg.Trade.PaymentWindow()
}

func invalidTransition(from, to models.TradeStatus) error {
	return fmt.Errorf("%w: %s to %s", apperrors.ErrInvalidTransition, from, to)
}

func containsStatus(statuses []models.TradeStatus, s models.TradeStatus) bool {
	for _, v := range statuses {
		if v == s {
			return true
		}
	}
	return false
}
