package usecase

import (
	"time"

	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/services/kyc"
)

// KYCUC implements identity submissions and admin review
type KYCUC struct {
	cfg     *models.Config
	kycRepo kyc.KYCRepo
	kycGW   kyc.KYCGW
	now     func() time.Time
}

// NewKYCUC creates a new KYC usecase
func NewKYCUC(cfg *models.Config, kycRepo kyc.KYCRepo, kycGW kyc.KYCGW) (kyc.KYCUC, error) {
	return &KYCUC{
		cfg:     cfg,
		kycRepo: kycRepo,
		kycGW:   kycGW,
		now:     func() time.Time { return time.Now().UTC() },
	}, nil
}
