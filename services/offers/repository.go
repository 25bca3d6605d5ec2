package offers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// OfferRepo defines the interface for offer data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/nairaxchange/services/offers OfferRepo
type OfferRepo interface {
	CreateOffer(ctx context.Context, offer *models.Offer) error
	GetOffer(ctx context.Context, id uuid.UUID) (*models.Offer, error)
	ListOffers(ctx context.Context, filter models.OfferFilter) ([]*models.Offer, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page models.Pagination) ([]*models.Offer, error)
	UpdateOffer(ctx context.Context, id uuid.UUID, patch *models.UpdateOfferRequest, now time.Time) (*models.Offer, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	GetUSDTBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}
