package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	jwtpkg "github.com/piresc/nairaxchange/internal/pkg/jwt"
	"github.com/piresc/nairaxchange/internal/pkg/logger"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/internal/pkg/twofactor"
	"github.com/piresc/nairaxchange/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// Register creates an account and signs the caller in
func (u *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), u.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: string(hash),
		FullName:     utils.SanitizeText(req.FullName),
		Phone:        req.Phone,
		IsActive:     true,
	}
	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "User registered",
		logger.UUID("user_id", user.ID),
		logger.String("email", utils.MaskEmail(user.Email)))

	return u.issueToken(user)
}

// Login verifies the password and, when enabled, the TOTP code
func (u *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.WarnCtx(ctx, "Failed login attempt", logger.UUID("user_id", user.ID))
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if user.TOTPEnabled {
		if req.TOTPCode == "" {
			return nil, apperrors.ErrTwoFactorRequired
		}
		if err := u.verifyCode(ctx, user.ID, req.TOTPCode, user.TOTPSecret); err != nil {
			return nil, err
		}
	}

	return u.issueToken(user)
}

func (u *UserUC) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, jwtpkg.RoleFor(user.IsAdmin), u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// SetupTwoFactor generates a secret the user must confirm with EnableTwoFactor
func (u *UserUC) SetupTwoFactor(ctx context.Context, id uuid.UUID) (*models.TwoFactorSetup, error) {
	user, err := u.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.TOTPEnabled {
		return nil, apperrors.ErrTwoFactorEnabled
	}

	key, err := twofactor.Generate(u.issuer(), user.Email)
	if err != nil {
		return nil, err
	}
	if err := u.userRepo.SavePendingTOTP(ctx, id, key.Secret); err != nil {
		return nil, err
	}
	return &models.TwoFactorSetup{Secret: key.Secret, URL: key.URL}, nil
}

// EnableTwoFactor confirms the pending secret with a code from the authenticator
func (u *UserUC) EnableTwoFactor(ctx context.Context, id uuid.UUID, code string) error {
	secret, err := u.userRepo.GetPendingTOTP(ctx, id)
	if err != nil {
		return err
	}
	if err := u.verifyCode(ctx, id, code, secret); err != nil {
		return err
	}
	if err := u.userRepo.SetTOTP(ctx, id, secret, true); err != nil {
		return err
	}
	if err := u.userRepo.DeletePendingTOTP(ctx, id); err != nil {
		logger.WarnCtx(ctx, "Failed to clear pending two-factor secret", logger.UUID("user_id", id), logger.Err(err))
	}

	logger.InfoCtx(ctx, "Two-factor enabled", logger.UUID("user_id", id))
	return nil
}

// DisableTwoFactor turns two-factor off after checking a current code
func (u *UserUC) DisableTwoFactor(ctx context.Context, id uuid.UUID, code string) error {
	user, err := u.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if !user.TOTPEnabled {
		return apperrors.ErrTwoFactorDisabled
	}
	if err := u.verifyCode(ctx, id, code, user.TOTPSecret); err != nil {
		return err
	}
	if err := u.userRepo.SetTOTP(ctx, id, "", false); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Two-factor disabled", logger.UUID("user_id", id))
	return nil
}

// verifyCode accepts each TOTP code once per user
func (u *UserUC) verifyCode(ctx context.Context, id uuid.UUID, code, secret string) error {
	step, ok := twofactor.Match(code, secret, u.now())
	if !ok {
		return apperrors.ErrInvalidTwoFactor
	}
	return u.userRepo.ClaimTOTPStep(ctx, id, step)
}

func (u *UserUC) issuer() string {
	if u.cfg.App.Name != "" {
		return u.cfg.App.Name
	}
	return "nairaxchange"
}
