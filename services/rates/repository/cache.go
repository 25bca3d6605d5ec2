package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/constants"
	"github.com/piresc/nairaxchange/internal/pkg/models"
)

// GetCached returns the cached current rate, or ErrRateNotFound on a miss
func (r *RateRepo) GetCached(ctx context.Context, pair string) (*models.ExchangeRate, error) {
	key := fmt.Sprintf(constants.KeyExchangeRate, pair)
	raw, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrRateNotFound
		}
		return nil, fmt.Errorf("failed to read cached rate: %w", err)
	}

	var rate models.ExchangeRate
	if err := json.Unmarshal([]byte(raw), &rate); err != nil {
		return nil, fmt.Errorf("failed to decode cached rate: %w", err)
	}
	return &rate, nil
}

// Cache stores rate as the current rate for its pair
func (r *RateRepo) Cache(ctx context.Context, rate *models.ExchangeRate, ttl time.Duration) error {
	data, err := json.Marshal(rate)
	if err != nil {
		return fmt.Errorf("failed to encode rate: %w", err)
	}
	key := fmt.Sprintf(constants.KeyExchangeRate, rate.Pair)
	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to cache rate: %w", err)
	}
	return nil
}
