package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/constants"
	"github.com/piresc/nairaxchange/internal/pkg/twofactor"
)

// SavePendingTOTP keeps an unconfirmed secret until the user proves possession
func (r *UserRepo) SavePendingTOTP(ctx context.Context, id uuid.UUID, secret string) error {
	key := fmt.Sprintf(constants.KeyTOTPSetup, id)
	if err := r.redisClient.Set(ctx, key, secret, constants.TOTPSetupTTL); err != nil {
		return fmt.Errorf("failed to store pending two-factor secret: %w", err)
	}
	return nil
}

// GetPendingTOTP returns the unconfirmed secret, or ErrTwoFactorNotPending
func (r *UserRepo) GetPendingTOTP(ctx context.Context, id uuid.UUID) (string, error) {
	key := fmt.Sprintf(constants.KeyTOTPSetup, id)
	secret, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperrors.ErrTwoFactorNotPending
		}
		return "", fmt.Errorf("failed to load pending two-factor secret: %w", err)
	}
	return secret, nil
}

// DeletePendingTOTP drops the unconfirmed secret
func (r *UserRepo) DeletePendingTOTP(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf(constants.KeyTOTPSetup, id)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete pending two-factor secret: %w", err)
	}
	return nil
}

// ClaimTOTPStep records step as the user's last accepted code. A step at or
// before the recorded one is a replay and returns ErrInvalidTwoFactor.
func (r *UserRepo) ClaimTOTPStep(ctx context.Context, id uuid.UUID, step int64) error {
	return twofactor.ClaimStep(ctx, r.redisClient, id, step)
}
