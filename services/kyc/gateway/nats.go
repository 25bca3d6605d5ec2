package gateway

import (
	"context"

	"github.com/piresc/nairaxchange/internal/pkg/constants"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	natspkg "github.com/piresc/nairaxchange/internal/pkg/nats"
	"github.com/piresc/nairaxchange/services/kyc"
)

// KYCGW publishes review outcomes over NATS
type KYCGW struct {
	natsClient *natspkg.Client
}

// NewKYCGW creates a new KYC gateway
func NewKYCGW(client *natspkg.Client) kyc.KYCGW {
	return &KYCGW{
		natsClient: client,
	}
}

// PublishReviewed publishes a kyc.reviewed event
func (g *KYCGW) PublishReviewed(ctx context.Context, event models.KYCEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectKYCReviewed, event)
}
