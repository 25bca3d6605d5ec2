package usecase

import (
	"time"

	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/services/rates"
)

// RateUC implements reference rate lookup and publishing
type RateUC struct {
	cfg      *models.Config
	rateRepo rates.RateRepo
	now      func() time.Time
}

// NewRateUC creates a new rates usecase
func NewRateUC(cfg *models.Config, rateRepo rates.RateRepo) (rates.RateUC, error) {
	return &RateUC{
		cfg:      cfg,
		rateRepo: rateRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}, nil
}
