package kyc

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/models"
)

// KYCRepo defines the interface for identity verification data access
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/nairaxchange/services/kyc KYCRepo
type KYCRepo interface {
	IsVerified(ctx context.Context, userID uuid.UUID) (bool, error)
	CreateSubmission(ctx context.Context, v *models.KYCVerification) error
	GetLatest(ctx context.Context, userID uuid.UUID) (*models.KYCVerification, error)
	ListPending(ctx context.Context, page models.Pagination) ([]*models.KYCVerification, error)
	Review(ctx context.Context, review models.KYCReview) (*models.KYCVerification, error)
}
