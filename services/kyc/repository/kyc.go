package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/database"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/services/kyc"
)

const (
	pendingConstraint = "kyc_verifications_pending_key"

	kycColumns = `id, user_id, bvn, full_name, date_of_birth, status, rejection_reason,
		reviewed_by, reviewed_at, created_at`
)

// KYCRepo implements kyc.KYCRepo on Postgres
type KYCRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewKYCRepository creates a new KYC repository
func NewKYCRepository(cfg *models.Config, db *sqlx.DB) kyc.KYCRepo {
	return &KYCRepo{cfg: cfg, db: db}
}

// IsVerified reports whether the user already passed KYC
func (r *KYCRepo) IsVerified(ctx context.Context, userID uuid.UUID) (bool, error) {
	var verified bool
	if err := r.db.GetContext(ctx, &verified, `SELECT kyc_verified FROM users WHERE id = $1`, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, apperrors.ErrUserNotFound
		}
		return false, fmt.Errorf("failed to check kyc status: %w", err)
	}
	return verified, nil
}

// CreateSubmission inserts a pending submission. The partial unique index
// allows one pending row per user.
func (r *KYCRepo) CreateSubmission(ctx context.Context, v *models.KYCVerification) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO kyc_verifications (id, user_id, bvn, full_name, date_of_birth, status, created_at)
		VALUES (:id, :user_id, :bvn, :full_name, :date_of_birth, :status, :created_at)`, v)
	if err != nil {
		if database.IsUniqueViolation(err, pendingConstraint) {
			return apperrors.ErrKYCPendingExists
		}
		return fmt.Errorf("failed to insert kyc submission: %w", err)
	}
	return nil
}

// GetLatest returns the user's most recent submission
func (r *KYCRepo) GetLatest(ctx context.Context, userID uuid.UUID) (*models.KYCVerification, error) {
	var v models.KYCVerification
	err := r.db.GetContext(ctx, &v, `SELECT `+kycColumns+`
		FROM kyc_verifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrKYCNotFound
		}
		return nil, fmt.Errorf("failed to get kyc submission: %w", err)
	}
	return &v, nil
}

// ListPending returns the review queue, oldest first
func (r *KYCRepo) ListPending(ctx context.Context, page models.Pagination) ([]*models.KYCVerification, error) {
	page = page.Normalize()
	out := []*models.KYCVerification{}
	err := r.db.SelectContext(ctx, &out, `SELECT `+kycColumns+`
		FROM kyc_verifications
		WHERE status = 'pending'
		ORDER BY created_at ASC
		LIMIT $1 OFFSET $2`, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list kyc submissions: %w", err)
	}
	return out, nil
}

// Review closes a pending submission. Approval flips users.kyc_verified in
// the same transaction.
func (r *KYCRepo) Review(ctx context.Context, review models.KYCReview) (*models.KYCVerification, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var v models.KYCVerification
	err = tx.GetContext(ctx, &v, `
		UPDATE kyc_verifications
		SET status = $2, rejection_reason = $3, reviewed_by = $4, reviewed_at = $5
		WHERE id = $1 AND status = 'pending'
		RETURNING `+kycColumns,
		review.ID, string(review.Status), review.Reason, review.ReviewerID, review.Now)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.notPending(ctx, tx, review.ID)
		}
		return nil, fmt.Errorf("failed to review kyc submission: %w", err)
	}

	if review.Status == models.KYCApproved {
		_, err = tx.ExecContext(ctx,
			`UPDATE users SET kyc_verified = TRUE, updated_at = $2 WHERE id = $1`, v.UserID, review.Now)
		if err != nil {
			return nil, fmt.Errorf("failed to mark user verified: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &v, nil
}

func (r *KYCRepo) notPending(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	var status models.KYCStatus
	err := tx.GetContext(ctx, &status, `SELECT status FROM kyc_verifications WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrKYCNotFound
		}
		return fmt.Errorf("failed to get kyc submission: %w", err)
	}
	return fmt.Errorf("%w: submission already %s", apperrors.ErrConflict, status)
}
