package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/models"
)

// UserRepo defines the interface for user data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/nairaxchange/services/users UserRepo
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error)
	ListUsers(ctx context.Context, filter models.UserFilter) ([]*models.User, error)
	SetAdmin(ctx context.Context, id uuid.UUID, value bool) (*models.User, error)
	SetActive(ctx context.Context, id uuid.UUID, value bool) (*models.User, error)

	// AdjustBalance applies a signed admin adjustment and its ledger row atomically
	AdjustBalance(ctx context.Context, adj models.BalanceAdjustment) (*models.BalanceSnapshot, error)
	GetTradeStats(ctx context.Context, id uuid.UUID) (*models.TradeStats, error)

	// Two-factor secrets. Pending secrets live in Redis until confirmed.
	SavePendingTOTP(ctx context.Context, id uuid.UUID, secret string) error
	GetPendingTOTP(ctx context.Context, id uuid.UUID) (string, error)
	DeletePendingTOTP(ctx context.Context, id uuid.UUID) error
	// ClaimTOTPStep refuses a TOTP step the user already spent
	ClaimTOTPStep(ctx context.Context, id uuid.UUID, step int64) error
	SetTOTP(ctx context.Context, id uuid.UUID, secret string, enabled bool) error
}
