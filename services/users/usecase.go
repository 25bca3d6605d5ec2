package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/models"
)

// UserUC defines account, authentication and admin user operations
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/nairaxchange/services/users UserUC
type UserUC interface {
	// auth
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)

	// profile
	GetMe(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetPublicProfile(ctx context.Context, id uuid.UUID) (*models.PublicProfile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error)

	// two-factor
	SetupTwoFactor(ctx context.Context, id uuid.UUID) (*models.TwoFactorSetup, error)
	EnableTwoFactor(ctx context.Context, id uuid.UUID, code string) error
	DisableTwoFactor(ctx context.Context, id uuid.UUID, code string) error

	// admin
	ListUsers(ctx context.Context, filter models.UserFilter) ([]*models.User, error)
	SetAdmin(ctx context.Context, actor models.Actor, id uuid.UUID, value bool) (*models.User, error)
	SetActive(ctx context.Context, actor models.Actor, id uuid.UUID, value bool) (*models.User, error)
	AdjustBalance(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.AdjustBalanceRequest) (*models.BalanceSnapshot, error)
}
