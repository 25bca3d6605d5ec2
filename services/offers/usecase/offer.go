package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/logger"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/internal/utils"
)

// CreateOffer posts a new offer. Sell offers require the maker to hold at
// least the minimum amount; funds are escrowed per trade, not per offer.
func (uc *OfferUC) CreateOffer(ctx context.Context, actor models.Actor, req *models.CreateOfferRequest) (*models.Offer, error) {
	now := uc.now()
	offer := &models.Offer{
		ID:                   uuid.New(),
		UserID:               actor.UserID,
		Type:                 req.Type,
		Rate:                 req.Rate,
		MinAmount:            req.MinAmount,
		MaxAmount:            req.MaxAmount,
		AvailableAmount:      req.AvailableAmount,
		PaymentMethod:        req.PaymentMethod,
		Terms:                utils.SanitizeText(req.Terms),
		PaymentWindowMinutes: req.PaymentWindowMinutes,
		AutoAccept:           true,
		IsActive:             true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if offer.PaymentWindowMinutes == 0 {
		offer.PaymentWindowMinutes = uc.cfg.Trade.PaymentWindowMinutes
	}
	if req.AutoAccept != nil {
		offer.AutoAccept = *req.AutoAccept
	}
	if err := validateOffer(offer); err != nil {
		return nil, err
	}

	if offer.Type == models.OfferTypeSell {
		balance, err := uc.offerRepo.GetUSDTBalance(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		if balance.LessThan(offer.MinAmount) {
			return nil, fmt.Errorf("%w: sell offers need at least %s USDT available", apperrors.ErrInsufficientBalance, offer.MinAmount.String())
		}
	}

	if err := uc.offerRepo.CreateOffer(ctx, offer); err != nil {
		return nil, err
	}

	uc.metrics.OffersCreated.WithLabelValues(string(offer.Type)).Inc()
	logger.InfoCtx(ctx, "Offer created",
		logger.UUID("offer_id", offer.ID),
		logger.UUID("user_id", offer.UserID),
		logger.String("type", string(offer.Type)),
		logger.Decimal("rate", offer.Rate))
	return offer, nil
}

// ListOffers returns the public offer book
func (uc *OfferUC) ListOffers(ctx context.Context, filter models.OfferFilter) ([]*models.Offer, error) {
	if filter.Type != "" && filter.Type != models.OfferTypeBuy && filter.Type != models.OfferTypeSell {
		return nil, fmt.Errorf("%w: type must be buy or sell", apperrors.ErrValidation)
	}
	if filter.Amount != nil && !filter.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrInvalidAmount)
	}
	return uc.offerRepo.ListOffers(ctx, filter)
}

// GetOffer returns a single offer
func (uc *OfferUC) GetOffer(ctx context.Context, id uuid.UUID) (*models.Offer, error) {
	return uc.offerRepo.GetOffer(ctx, id)
}

// ListMine lists the caller's offers
func (uc *OfferUC) ListMine(ctx context.Context, actor models.Actor, page models.Pagination) ([]*models.Offer, error) {
	return uc.offerRepo.ListByUser(ctx, actor.UserID, page)
}

// UpdateOffer changes an offer owned by the caller. The merged result is
// validated against the current row; only the supplied fields are written.
func (uc *OfferUC) UpdateOffer(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.UpdateOfferRequest) (*models.Offer, error) {
	current, err := uc.offerRepo.GetOffer(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.UserID != actor.UserID {
		return nil, apperrors.ErrForbidden
	}

	patch := *req
	if patch.Terms != nil {
		terms := utils.SanitizeText(*patch.Terms)
		patch.Terms = &terms
	}

	merged := *current
	if patch.Rate != nil {
		merged.Rate = *patch.Rate
	}
	if patch.MinAmount != nil {
		merged.MinAmount = *patch.MinAmount
	}
	if patch.MaxAmount != nil {
		merged.MaxAmount = *patch.MaxAmount
	}
	if patch.AvailableAmount != nil {
		merged.AvailableAmount = *patch.AvailableAmount
	}
	if patch.PaymentMethod != nil {
		merged.PaymentMethod = *patch.PaymentMethod
	}
	if patch.Terms != nil {
		merged.Terms = *patch.Terms
	}
	if patch.PaymentWindowMinutes != nil {
		merged.PaymentWindowMinutes = *patch.PaymentWindowMinutes
	}
	if patch.AutoAccept != nil {
		merged.AutoAccept = *patch.AutoAccept
	}
	if patch.IsActive != nil {
		merged.IsActive = *patch.IsActive
	}
	if err := validateOffer(&merged); err != nil {
		return nil, err
	}

	offer, err := uc.offerRepo.UpdateOffer(ctx, id, &patch, uc.now())
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Offer updated", logger.UUID("offer_id", offer.ID))
	return offer, nil
}

// DeleteOffer deactivates an offer. Owners and admins may do this.
func (uc *OfferUC) DeleteOffer(ctx context.Context, actor models.Actor, id uuid.UUID) error {
	offer, err := uc.offerRepo.GetOffer(ctx, id)
	if err != nil {
		return err
	}
	if offer.UserID != actor.UserID && !actor.IsAdmin {
		return apperrors.ErrForbidden
	}
	if err := uc.offerRepo.Deactivate(ctx, id); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Offer deactivated",
		logger.UUID("offer_id", id),
		logger.UUID("actor_id", actor.UserID))
	return nil
}

func validateOffer(o *models.Offer) error {
	switch {
	case o.Type != models.OfferTypeBuy && o.Type != models.OfferTypeSell:
		return fmt.Errorf("%w: type must be buy or sell", apperrors.ErrValidation)
	case !o.Rate.IsPositive():
		return fmt.Errorf("%w: rate must be greater than zero", apperrors.ErrInvalidAmount)
	case !o.MinAmount.IsPositive():
		return fmt.Errorf("%w: min_amount must be greater than zero", apperrors.ErrInvalidAmount)
	case o.MinAmount.GreaterThan(o.MaxAmount):
		return fmt.Errorf("%w: min_amount must not exceed max_amount", apperrors.ErrInvalidAmount)
	case o.AvailableAmount.IsNegative():
		return fmt.Errorf("%w: available_amount must not be negative", apperrors.ErrInvalidAmount)
	case o.IsActive && o.AvailableAmount.LessThan(o.MinAmount):
		return fmt.Errorf("%w: available_amount must be at least min_amount", apperrors.ErrInvalidAmount)
	case o.PaymentWindowMinutes < minPaymentWindow || o.PaymentWindowMinutes > maxPaymentWindow:
		return fmt.Errorf("%w: payment_window_minutes must be between %d and %d",
			apperrors.ErrValidation, minPaymentWindow, maxPaymentWindow)
	case o.Rate.Exponent() < -2:
		return fmt.Errorf("%w: rate supports at most 2 decimal places", apperrors.ErrInvalidAmount)
	}
	return nil
}
