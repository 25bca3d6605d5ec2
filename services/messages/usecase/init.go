package usecase

import (
	"time"

	"github.com/piresc/nairaxchange/internal/pkg/metrics"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/services/messages"
)

// MessageUC implements the trade chat
type MessageUC struct {
	cfg     *models.Config
	msgRepo messages.MessageRepo
	msgGW   messages.MessageGW
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewMessageUC creates a new message usecase
func NewMessageUC(cfg *models.Config, msgRepo messages.MessageRepo, msgGW messages.MessageGW, m *metrics.Metrics) (messages.MessageUC, error) {
	if m == nil {
		m = metrics.New()
	}
	return &MessageUC{
		cfg:     cfg,
		msgRepo: msgRepo,
		msgGW:   msgGW,
		metrics: m,
		now:     func() time.Time { return time.Now().UTC() },
	}, nil
}
