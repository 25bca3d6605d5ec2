package usecase

import (
	"time"

	"github.com/piresc/nairaxchange/internal/pkg/metrics"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/services/trades"
)

// expiryBatchSize bounds how many overdue trades one sweep pass loads
const expiryBatchSize = 100

// TradeUC implements the trade lifecycle
type TradeUC struct {
	cfg     *models.Config
	repo    trades.TradeRepo
	gw      trades.TradeGW
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewTradeUC creates a new trade use case
func NewTradeUC(cfg *models.Config, repo trades.TradeRepo, gw trades.TradeGW, m *metrics.Metrics) (trades.TradeUC, error) {
	if m == nil {
		m = metrics.New()
	}
	return &TradeUC{
		cfg:     cfg,
		repo:    repo,
		gw:      gw,
		metrics: m,
		now:     func() time.Time { return time.Now().UTC() },
	}, nil
}
