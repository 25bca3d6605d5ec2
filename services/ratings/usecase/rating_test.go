package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/services/ratings/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

func newTestUC(t *testing.T) (*RatingUC, *mocks.MockRatingRepo) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRatingRepo(ctrl)

	uc, err := NewRatingUC(&models.Config{}, repo)
	require.NoError(t, err)
	impl := uc.(*RatingUC)
	impl.now = func() time.Time { return fixedNow }
	return impl, repo
}

func completedTrade() *models.Trade {
	return &models.Trade{
		ID:       uuid.New(),
		BuyerID:  uuid.New(),
		SellerID: uuid.New(),
		Status:   models.TradeStatusCompleted,
	}
}

func TestRateTrade(t *testing.T) {
	// Arrange
	uc, repo := newTestUC(t)
	trade := completedTrade()
	repo.EXPECT().GetTrade(gomock.Any(), trade.ID).Return(trade, nil)
	repo.EXPECT().CreateRating(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Rating) error {
			assert.Equal(t, trade.SellerID, r.RaterID)
			assert.Equal(t, trade.BuyerID, r.RateeID)
			assert.Equal(t, "smooth trade", r.Comment)
			return nil
		})

	// Act
	rating, err := uc.RateTrade(context.Background(), models.Actor{UserID: trade.SellerID}, trade.ID,
		&models.RateTradeRequest{Score: 5, Comment: " smooth  trade "})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 5, rating.Score)
	assert.Equal(t, fixedNow, rating.CreatedAt)
}

func TestRateTrade_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		status  models.TradeStatus
		outside bool
		repoErr error
		wantErr error
	}{
		{name: "not completed", status: models.TradeStatusPaymentMade, wantErr: apperrors.ErrTradeNotCompleted},
		{name: "cancelled", status: models.TradeStatusCancelled, wantErr: apperrors.ErrTradeNotCompleted},
		{name: "outsider", status: models.TradeStatusCompleted, outside: true, wantErr: apperrors.ErrForbidden},
		{name: "repeat", status: models.TradeStatusCompleted, repoErr: apperrors.ErrAlreadyRated, wantErr: apperrors.ErrAlreadyRated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := newTestUC(t)
			trade := completedTrade()
			trade.Status = tt.status
			repo.EXPECT().GetTrade(gomock.Any(), trade.ID).Return(trade, nil)
			if tt.repoErr != nil {
				repo.EXPECT().CreateRating(gomock.Any(), gomock.Any()).Return(tt.repoErr)
			}

			actor := models.Actor{UserID: trade.BuyerID}
			if tt.outside {
				actor = models.Actor{UserID: uuid.New(), IsAdmin: true}
			}
			_, err := uc.RateTrade(context.Background(), actor, trade.ID, &models.RateTradeRequest{Score: 3})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRateTrade_ScoreRange(t *testing.T) {
	uc, _ := newTestUC(t)
	_, err := uc.RateTrade(context.Background(), models.Actor{UserID: uuid.New()}, uuid.New(), &models.RateTradeRequest{Score: 0})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestListForUser(t *testing.T) {
	uc, repo := newTestUC(t)
	userID := uuid.New()
	page := models.Pagination{Limit: 10}

	repo.EXPECT().Summary(gomock.Any(), userID).
		Return(&models.RatingSummary{Average: decimal.RequireFromString("4.5"), Count: 2}, nil)
	repo.EXPECT().ListForUser(gomock.Any(), userID, page).
		Return([]*models.Rating{{Score: 4}, {Score: 5}}, nil)

	out, err := uc.ListForUser(context.Background(), userID, page)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Summary.Count)
	assert.Len(t, out.Ratings, 2)
}

func TestListForUser_SummaryError(t *testing.T) {
	uc, repo := newTestUC(t)
	userID := uuid.New()
	repo.EXPECT().Summary(gomock.Any(), userID).Return(nil, errors.New("db down"))

	_, err := uc.ListForUser(context.Background(), userID, models.Pagination{})
	assert.Error(t, err)
}
