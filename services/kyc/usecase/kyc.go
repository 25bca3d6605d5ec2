package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/logger"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/internal/utils"
)

const bvnVisibleDigits = 4

// Submit files a new identity submission for review
func (uc *KYCUC) Submit(ctx context.Context, actor models.Actor, req *models.SubmitKYCRequest) (*models.KYCVerification, error) {
	fullName := utils.SanitizeText(req.FullName)
	if fullName == "" {
		return nil, fmt.Errorf("%w: full_name is required", apperrors.ErrValidation)
	}
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("%w: date_of_birth must be YYYY-MM-DD", apperrors.ErrValidation)
	}
	if !dob.Before(uc.now()) {
		return nil, fmt.Errorf("%w: date_of_birth must be in the past", apperrors.ErrValidation)
	}

	verified, err := uc.kycRepo.IsVerified(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if verified {
		return nil, apperrors.ErrKYCAlreadyVerified
	}

	v := &models.KYCVerification{
		ID:          uuid.New(),
		UserID:      actor.UserID,
		BVN:         req.BVN,
		FullName:    fullName,
		DateOfBirth: req.DateOfBirth,
		Status:      models.KYCPending,
		CreatedAt:   uc.now(),
	}
	if err := uc.kycRepo.CreateSubmission(ctx, v); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "KYC submitted",
		logger.UUID("verification_id", v.ID),
		logger.UUID("user_id", v.UserID))
	return masked(v), nil
}

// GetMine returns the caller's latest submission with the BVN masked
func (uc *KYCUC) GetMine(ctx context.Context, actor models.Actor) (*models.KYCVerification, error) {
	v, err := uc.kycRepo.GetLatest(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return masked(v), nil
}

// ListPending returns submissions awaiting review
func (uc *KYCUC) ListPending(ctx context.Context, actor models.Actor, page models.Pagination) ([]*models.KYCVerification, error) {
	if !actor.IsAdmin {
		return nil, apperrors.ErrAdminRequired
	}
	return uc.kycRepo.ListPending(ctx, page)
}

// Approve marks a submission approved and the user verified
func (uc *KYCUC) Approve(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.KYCVerification, error) {
	return uc.review(ctx, actor, id, models.KYCApproved, "")
}

// Reject closes a submission with a reason; the user may submit again
func (uc *KYCUC) Reject(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.RejectRequest) (*models.KYCVerification, error) {
	reason := utils.SanitizeText(req.Reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: reason is required", apperrors.ErrValidation)
	}
	return uc.review(ctx, actor, id, models.KYCRejected, reason)
}

func (uc *KYCUC) review(ctx context.Context, actor models.Actor, id uuid.UUID, status models.KYCStatus, reason string) (*models.KYCVerification, error) {
	if !actor.IsAdmin {
		return nil, apperrors.ErrAdminRequired
	}

	v, err := uc.kycRepo.Review(ctx, models.KYCReview{
		ID:         id,
		Status:     status,
		Reason:     reason,
		ReviewerID: actor.UserID,
		Now:        uc.now(),
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "KYC reviewed",
		logger.UUID("verification_id", v.ID),
		logger.UUID("user_id", v.UserID),
		logger.UUID("admin_id", actor.UserID),
		logger.String("status", string(v.Status)))

	event := models.KYCEvent{
		VerificationID: v.ID,
		UserID:         v.UserID,
		Status:         v.Status,
		Reason:         v.RejectionReason,
		OccurredAt:     uc.now(),
	}
	if err := uc.kycGW.PublishReviewed(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish kyc review", logger.Err(err))
	}
	return v, nil
}

func masked(v *models.KYCVerification) *models.KYCVerification {
	out := *v
	out.BVN = utils.MaskTail(v.BVN, bvnVisibleDigits)
	return &out
}
