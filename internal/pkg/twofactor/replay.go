package twofactor

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/constants"
	"github.com/piresc/nairaxchange/internal/pkg/database"
)

// ClaimStep records step as the last code userID used. Steps move forward
// only, so a code seen once, or one older than it, is refused.
func ClaimStep(ctx context.Context, redisClient *database.RedisClient, userID uuid.UUID, step int64) error {
	key := fmt.Sprintf(constants.KeyTOTPStep, userID)
	advanced, err := redisClient.Advance(ctx, key, step, constants.TOTPStepTTL)
	if err != nil {
		return fmt.Errorf("failed to record two-factor step: %w", err)
	}
	if !advanced {
		return fmt.Errorf("%w: code already used", apperrors.ErrInvalidTwoFactor)
	}
	return nil
}
