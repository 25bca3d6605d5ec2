package usecase

import (
	"time"

	"github.com/piresc/nairaxchange/internal/pkg/metrics"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/services/offers"
)

const (
	minPaymentWindow = 5
	maxPaymentWindow = 180
)

// OfferUC implements the offer book
type OfferUC struct {
	cfg       *models.Config
	offerRepo offers.OfferRepo
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewOfferUC creates a new offer usecase
func NewOfferUC(cfg *models.Config, offerRepo offers.OfferRepo, m *metrics.Metrics) (offers.OfferUC, error) {
	if m == nil {
		m = metrics.New()
	}
	return &OfferUC{
		cfg:       cfg,
		offerRepo: offerRepo,
		metrics:   m,
		now:       func() time.Time { return time.Now().UTC() },
	}, nil
}
