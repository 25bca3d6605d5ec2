package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/logger"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/internal/pkg/wallet"
	"github.com/piresc/nairaxchange/internal/utils"
)

// GetMe returns the caller's own account including balances
func (u *UserUC) GetMe(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return u.userRepo.GetUserByID(ctx, id)
}

// GetPublicProfile returns what other users may see about an account
func (u *UserUC) GetPublicProfile(ctx context.Context, id uuid.UUID) (*models.PublicProfile, error) {
	user, err := u.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	stats, err := u.userRepo.GetTradeStats(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.PublicProfile{
		ID:              user.ID,
		Username:        user.Username,
		KYCVerified:     user.KYCVerified,
		CompletedTrades: stats.CompletedTrades,
		Rating: models.RatingSummary{
			Average: stats.RatingAverage,
			Count:   stats.RatingCount,
		},
		JoinedAt: user.CreatedAt,
	}, nil
}

// UpdateProfile changes contact, bank and payout details
func (u *UserUC) UpdateProfile(ctx context.Context, id uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error) {
	if req.TronAddress != nil && *req.TronAddress != "" {
		if err := wallet.ValidateAddress(*req.TronAddress); err != nil {
			return nil, err
		}
	}
	if req.FullName != nil {
		name := utils.SanitizeText(*req.FullName)
		req.FullName = &name
	}
	if req.BankAccountName != nil {
		name := utils.SanitizeText(*req.BankAccountName)
		req.BankAccountName = &name
	}
	return u.userRepo.UpdateProfile(ctx, id, req)
}

// ListUsers lists accounts for admins
func (u *UserUC) ListUsers(ctx context.Context, filter models.UserFilter) ([]*models.User, error) {
	return u.userRepo.ListUsers(ctx, filter)
}

// SetAdmin grants or revokes admin rights. Admins cannot demote themselves.
func (u *UserUC) SetAdmin(ctx context.Context, actor models.Actor, id uuid.UUID, value bool) (*models.User, error) {
	if !actor.IsAdmin {
		return nil, apperrors.ErrAdminRequired
	}
	if actor.UserID == id && !value {
		return nil, fmt.Errorf("%w: admins cannot revoke their own admin rights", apperrors.ErrForbidden)
	}

	user, err := u.userRepo.SetAdmin(ctx, id, value)
	if err != nil {
		return nil, err
	}
	logger.InfoCtx(ctx, "Admin flag changed",
		logger.UUID("user_id", id),
		logger.Bool("is_admin", value),
		logger.UUID("admin_id", actor.UserID))
	return user, nil
}

// SetActive enables or disables an account. Admins cannot disable themselves.
func (u *UserUC) SetActive(ctx context.Context, actor models.Actor, id uuid.UUID, value bool) (*models.User, error) {
	if !actor.IsAdmin {
		return nil, apperrors.ErrAdminRequired
	}
	if actor.UserID == id && !value {
		return nil, fmt.Errorf("%w: admins cannot disable their own account", apperrors.ErrForbidden)
	}

	user, err := u.userRepo.SetActive(ctx, id, value)
	if err != nil {
		return nil, err
	}
	logger.InfoCtx(ctx, "Account active flag changed",
		logger.UUID("user_id", id),
		logger.Bool("is_active", value),
		logger.UUID("admin_id", actor.UserID))
	return user, nil
}

// AdjustBalance applies a signed admin credit or debit
func (u *UserUC) AdjustBalance(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.AdjustBalanceRequest) (*models.BalanceSnapshot, error) {
	if !actor.IsAdmin {
		return nil, apperrors.ErrAdminRequired
	}
	if req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount must not be zero", apperrors.ErrInvalidAmount)
	}
	if !req.Currency.Valid() {
		return nil, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, req.Currency)
	}

	now := u.now()
	snapshot, err := u.userRepo.AdjustBalance(ctx, models.BalanceAdjustment{
		UserID:   id,
		AdminID:  actor.UserID,
		Currency: req.Currency,
		Amount:   req.Amount,
		Note:     utils.SanitizeText(req.Note),
		Now:      now,
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Balance adjusted by admin",
		logger.UUID("user_id", id),
		logger.String("currency", string(req.Currency)),
		logger.Decimal("amount", req.Amount),
		logger.UUID("admin_id", actor.UserID))

	event := models.BalanceEvent{
		BalanceSnapshot: *snapshot,
		Reason:          string(models.TransactionAdminAdjustment),
		OccurredAt:      now,
	}
	if err := u.userGW.PublishBalanceUpdated(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish balance event", logger.UUID("user_id", id), logger.Err(err))
	}
	return snapshot, nil
}
