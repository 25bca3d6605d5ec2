package usecase

import (
	"time"

	"github.com/piresc/nairaxchange/internal/pkg/metrics"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/services/wallet"
)

// WalletUC implements deposits, withdrawals and ledger reads
type WalletUC struct {
	cfg        *models.Config
	walletRepo wallet.WalletRepo
	walletGW   wallet.WalletGW
	chain      wallet.ChainGW
	metrics    *metrics.Metrics
	now        func() time.Time
}

// NewWalletUC creates a new wallet usecase
func NewWalletUC(
	cfg *models.Config,
	walletRepo wallet.WalletRepo,
	walletGW wallet.WalletGW,
	chain wallet.ChainGW,
	m *metrics.Metrics,
) (wallet.WalletUC, error) {
	if m == nil {
		m = metrics.New()
	}
	return &WalletUC{
		cfg:        cfg,
		walletRepo: walletRepo,
		walletGW:   walletGW,
		chain:      chain,
		metrics:    m,
		now:        func() time.Time { return time.Now().UTC() },
	}, nil
}
