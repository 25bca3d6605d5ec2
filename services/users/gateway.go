package users

import (
	"context"

	"github.com/piresc/nairaxchange/internal/pkg/models"
)

// UserGW publishes account events
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/nairaxchange/services/users UserGW
type UserGW interface {
	PublishBalanceUpdated(ctx context.Context, event models.BalanceEvent) error
}
