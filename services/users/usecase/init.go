package usecase

import (
	"time"

	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/services/users"
	"golang.org/x/crypto/bcrypt"
)

// UserUC implements account, authentication and admin user operations
type UserUC struct {
	cfg        *models.Config
	userRepo   users.UserRepo
	userGW     users.UserGW
	bcryptCost int
	now        func() time.Time
}

// NewUserUC creates a new user usecase instance
func NewUserUC(
	cfg *models.Config,
	userRepo users.UserRepo,
	userGW users.UserGW,
) (users.UserUC, error) {
	return &UserUC{
		cfg:        cfg,
		userRepo:   userRepo,
		userGW:     userGW,
		bcryptCost: bcrypt.DefaultCost,
		now:        func() time.Time { return time.Now().UTC() },
	}, nil
}
