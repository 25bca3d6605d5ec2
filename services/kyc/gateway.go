package kyc

import (
	"context"

	"github.com/piresc/nairaxchange/internal/pkg/models"
)

// KYCGW defines the interface for review notifications
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/nairaxchange/services/kyc KYCGW
type KYCGW interface {
	PublishReviewed(ctx context.Context, event models.KYCEvent) error
}
