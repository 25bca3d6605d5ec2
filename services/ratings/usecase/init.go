package usecase

import (
	"time"

	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/services/ratings"
)

// RatingUC implements counterparty feedback
type RatingUC struct {
	cfg        *models.Config
	ratingRepo ratings.RatingRepo
	now        func() time.Time
}

// NewRatingUC creates a new rating usecase
func NewRatingUC(cfg *models.Config, ratingRepo ratings.RatingRepo) (ratings.RatingUC, error) {
	return &RatingUC{
		cfg:        cfg,
		ratingRepo: ratingRepo,
		now:        func() time.Time { return time.Now().UTC() },
	}, nil
}
