package offers

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/models"
)

// OfferUC defines the offer book operations
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/nairaxchange/services/offers OfferUC
type OfferUC interface {
	CreateOffer(ctx context.Context, actor models.Actor, req *models.CreateOfferRequest) (*models.Offer, error)
	ListOffers(ctx context.Context, filter models.OfferFilter) ([]*models.Offer, error)
	GetOffer(ctx context.Context, id uuid.UUID) (*models.Offer, error)
	ListMine(ctx context.Context, actor models.Actor, page models.Pagination) ([]*models.Offer, error)
	UpdateOffer(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.UpdateOfferRequest) (*models.Offer, error)
	DeleteOffer(ctx context.Context, actor models.Actor, id uuid.UUID) error
}
