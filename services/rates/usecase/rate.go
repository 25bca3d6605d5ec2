package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/logger"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/internal/utils"
	"github.com/shopspring/decimal"
)

const defaultSource = "manual"

// Current returns the latest rate for pair, served from cache when possible.
// Cache errors degrade to a database read.
func (uc *RateUC) Current(ctx context.Context, pair string) (*models.ExchangeRate, error) {
	pair = uc.normalizePair(pair)

	rate, err := uc.rateRepo.GetCached(ctx, pair)
	if err == nil {
		return rate, nil
	}
	if !errors.Is(err, apperrors.ErrRateNotFound) {
		logger.WarnCtx(ctx, "Rate cache read failed", logger.String("pair", pair), logger.Err(err))
	}

	rate, err = uc.rateRepo.GetLatest(ctx, pair)
	if err != nil {
		return nil, err
	}
	uc.cache(ctx, rate)
	return rate, nil
}

// History returns past rates for pair, newest first
func (uc *RateUC) History(ctx context.Context, pair string, page models.Pagination) ([]*models.ExchangeRate, error) {
	return uc.rateRepo.History(ctx, uc.normalizePair(pair), page)
}

// Set publishes a new reference rate and refreshes the cache
func (uc *RateUC) Set(ctx context.Context, actor models.Actor, req *models.SetRateRequest) (*models.ExchangeRate, error) {
	if !actor.IsAdmin {
		return nil, apperrors.ErrAdminRequired
	}
	if err := validateRate("buy_rate", req.BuyRate); err != nil {
		return nil, err
	}
	if err := validateRate("sell_rate", req.SellRate); err != nil {
		return nil, err
	}

	source := utils.SanitizeText(req.Source)
	if source == "" {
		source = defaultSource
	}
	adminID := actor.UserID
	rate := &models.ExchangeRate{
		ID:        uuid.New(),
		Pair:      uc.normalizePair(req.Pair),
		BuyRate:   req.BuyRate,
		SellRate:  req.SellRate,
		Source:    source,
		UpdatedBy: &adminID,
		CreatedAt: uc.now(),
	}
	if err := uc.rateRepo.Insert(ctx, rate); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Exchange rate updated",
		logger.String("pair", rate.Pair),
		logger.Decimal("buy_rate", rate.BuyRate),
		logger.Decimal("sell_rate", rate.SellRate),
		logger.UUID("admin_id", adminID))

	uc.cache(ctx, rate)
	return rate, nil
}

func (uc *RateUC) cache(ctx context.Context, rate *models.ExchangeRate) {
	if err := uc.rateRepo.Cache(ctx, rate, uc.cfg.Rates.CacheTTL); err != nil {
		logger.WarnCtx(ctx, "Rate cache write failed", logger.String("pair", rate.Pair), logger.Err(err))
	}
}

func (uc *RateUC) normalizePair(pair string) string {
	pair = strings.ToUpper(strings.TrimSpace(pair))
	if pair == "" {
		return uc.cfg.Rates.DefaultPair
	}
	return pair
}

func validateRate(field string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return fmt.Errorf("%w: %s must be greater than zero", apperrors.ErrValidation, field)
	}
	if !v.Equal(v.Truncate(2)) {
		return fmt.Errorf("%w: %s supports at most 2 decimal places", apperrors.ErrValidation, field)
	}
	return nil
}
