package kyc

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/models"
)

// KYCUC defines identity submission and review operations
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/nairaxchange/services/kyc KYCUC
type KYCUC interface {
	Submit(ctx context.Context, actor models.Actor, req *models.SubmitKYCRequest) (*models.KYCVerification, error)
	GetMine(ctx context.Context, actor models.Actor) (*models.KYCVerification, error)
	ListPending(ctx context.Context, actor models.Actor, page models.Pagination) ([]*models.KYCVerification, error)
	Approve(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.KYCVerification, error)
	Reject(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.RejectRequest) (*models.KYCVerification, error)
}
