package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/apperrors"
	jwtpkg "github.com/piresc/nairaxchange/internal/pkg/jwt"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/piresc/nairaxchange/internal/pkg/twofactor"
	"github.com/piresc/nairaxchange/services/users/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "JBSWY3DPEHPK3PXP"

var fixedNow = time.Date(2025, 4, 2, 8, 30, 0, 0, time.UTC)

func newTestUC(t *testing.T) (*UserUC, *mocks.MockUserRepo, *mocks.MockUserGW) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepo(ctrl)
	gw := mocks.NewMockUserGW(ctrl)

	cfg := &models.Config{
		App: models.AppConfig{Name: "nairaxchange"},
		JWT: models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "nairaxchange"},
	}
	uc, err := NewUserUC(cfg, repo, gw)
	require.NoError(t, err)

	impl := uc.(*UserUC)
	impl.bcryptCost = bcrypt.MinCost
	impl.now = func() time.Time { return fixedNow }
	return impl, repo, gw
}

func hashed(t *testing.T, password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func currentCode(t *testing.T) string {
	code, err := twofactor.Code(testSecret, fixedNow)
	require.NoError(t, err)
	return code
}

func TestRegister(t *testing.T) {
	// Arrange
	uc, repo, _ := newTestUC(t)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *models.User) error {
			assert.Equal(t, "ada@example.com", u.Email)
			assert.True(t, u.IsActive)
			assert.False(t, u.IsAdmin)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pass")))
			return nil
		})

	// Act
	resp, err := uc.Register(context.Background(), &models.RegisterRequest{
		Email:    " Ada@Example.com",
		Username: "ada",
		Password: "s3cret-pass",
	})

	// Assert
	require.NoError(t, err)
	claims, err := jwtpkg.ValidateToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, jwtpkg.RoleUser, claims.Role)
}

func TestRegister_Conflict(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(apperrors.ErrUsernameTaken)

	_, err := uc.Register(context.Background(), &models.RegisterRequest{Email: "a@b.co", Username: "ada", Password: "password1"})
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	active := func() *models.User {
		return &models.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: hashed(t, "password1"), IsActive: true}
	}

	tests := []struct {
		name    string
		user    func() *models.User
		repoErr error
		req     models.LoginRequest
		wantErr error
	}{
		{name: "success", user: active, req: models.LoginRequest{Password: "password1"}},
		{name: "unknown email", repoErr: apperrors.ErrUserNotFound, req: models.LoginRequest{Password: "password1"}, wantErr: apperrors.ErrInvalidCredentials},
		{name: "wrong password", user: active, req: models.LoginRequest{Password: "password2"}, wantErr: apperrors.ErrInvalidCredentials},
		{
			name: "disabled account",
			user: func() *models.User {
				u := active()
				u.IsActive = false
				return u
			},
			req:     models.LoginRequest{Password: "password1"},
			wantErr: apperrors.ErrAccountDisabled,
		},
		{
			name: "two-factor code missing",
			user: func() *models.User {
				u := active()
				u.TOTPEnabled, u.TOTPSecret = true, testSecret
				return u
			},
			req:     models.LoginRequest{Password: "password1"},
			wantErr: apperrors.ErrTwoFactorRequired,
		},
		{
			name: "two-factor code wrong",
			user: func() *models.User {
				u := active()
				u.TOTPEnabled, u.TOTPSecret = true, testSecret
				return u
			},
			req:     models.LoginRequest{Password: "password1", TOTPCode: "000000"},
			wantErr: apperrors.ErrInvalidTwoFactor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, _ := newTestUC(t)
			var user *models.User
			if tt.user != nil {
				user = tt.user()
			}
			repo.EXPECT().GetUserByEmail(gomock.Any(), "ada@example.com").Return(user, tt.repoErr)

			tt.req.Email = "ada@example.com"
			resp, err := uc.Login(context.Background(), &tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, resp.Token)
		})
	}
}

func TestLogin_WithTwoFactor(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	user := &models.User{
		ID: uuid.New(), Email: "ada@example.com", PasswordHash: hashed(t, "password1"),
		IsActive: true, IsAdmin: true, TOTPEnabled: true, TOTPSecret: testSecret,
	}
	repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
	repo.EXPECT().ClaimTOTPStep(gomock.Any(), user.ID, fixedNow.Unix()/30).Return(nil)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email: user.Email, Password: "password1", TOTPCode: currentCode(t),
	})
	require.NoError(t, err)

	claims, err := jwtpkg.ValidateToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, jwtpkg.RoleAdmin, claims.Role)
}

func TestLogin_ReusedTwoFactorCode(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	user := &models.User{
		ID: uuid.New(), Email: "ada@example.com", PasswordHash: hashed(t, "password1"),
		IsActive: true, TOTPEnabled: true, TOTPSecret: testSecret,
	}
	req := &models.LoginRequest{Email: user.Email, Password: "password1", TOTPCode: currentCode(t)}

	repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil).Times(2)
	gomock.InOrder(
		repo.EXPECT().ClaimTOTPStep(gomock.Any(), user.ID, fixedNow.Unix()/30).Return(nil),
		repo.EXPECT().ClaimTOTPStep(gomock.Any(), user.ID, fixedNow.Unix()/30).
			Return(fmt.Errorf("%w: code already used", apperrors.ErrInvalidTwoFactor)),
	)

	_, err := uc.Login(context.Background(), req)
	require.NoError(t, err)

	resp, err := uc.Login(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTwoFactor)
	assert.Nil(t, resp)
}

func TestTwoFactorEnrollment(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	id := uuid.New()

	repo.EXPECT().GetUserByID(gomock.Any(), id).Return(&models.User{ID: id, Email: "ada@example.com"}, nil)
	var pending string
	repo.EXPECT().SavePendingTOTP(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, secret string) error {
			pending = secret
			return nil
		})

	setup, err := uc.SetupTwoFactor(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, pending, setup.Secret)
	assert.Contains(t, setup.URL, "otpauth://totp/")

	code, err := twofactor.Code(pending, fixedNow)
	require.NoError(t, err)

	repo.EXPECT().GetPendingTOTP(gomock.Any(), id).Return(pending, nil)
	repo.EXPECT().ClaimTOTPStep(gomock.Any(), id, fixedNow.Unix()/30).Return(nil)
	repo.EXPECT().SetTOTP(gomock.Any(), id, pending, true).Return(nil)
	repo.EXPECT().DeletePendingTOTP(gomock.Any(), id).Return(errors.New("redis gone"))

	assert.NoError(t, uc.EnableTwoFactor(context.Background(), id, code))
}

func TestSetupTwoFactor_AlreadyEnabled(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	id := uuid.New()
	repo.EXPECT().GetUserByID(gomock.Any(), id).Return(&models.User{ID: id, TOTPEnabled: true}, nil)

	_, err := uc.SetupTwoFactor(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrTwoFactorEnabled)
}

func TestEnableTwoFactor_Errors(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	id := uuid.New()

	repo.EXPECT().GetPendingTOTP(gomock.Any(), id).Return("", apperrors.ErrTwoFactorNotPending)
	assert.ErrorIs(t, uc.EnableTwoFactor(context.Background(), id, "123456"), apperrors.ErrTwoFactorNotPending)

	repo.EXPECT().GetPendingTOTP(gomock.Any(), id).Return(testSecret, nil)
	assert.ErrorIs(t, uc.EnableTwoFactor(context.Background(), id, "000000"), apperrors.ErrInvalidTwoFactor)
}

func TestDisableTwoFactor(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	id := uuid.New()

	repo.EXPECT().GetUserByID(gomock.Any(), id).Return(&models.User{ID: id, TOTPEnabled: true, TOTPSecret: testSecret}, nil)
	repo.EXPECT().ClaimTOTPStep(gomock.Any(), id, fixedNow.Unix()/30).Return(nil)
	repo.EXPECT().SetTOTP(gomock.Any(), id, "", false).Return(nil)
	assert.NoError(t, uc.DisableTwoFactor(context.Background(), id, currentCode(t)))

	repo.EXPECT().GetUserByID(gomock.Any(), id).Return(&models.User{ID: id}, nil)
	assert.ErrorIs(t, uc.DisableTwoFactor(context.Background(), id, "123456"), apperrors.ErrTwoFactorDisabled)
}

func TestGetPublicProfile(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	id := uuid.New()
	joined := fixedNow.AddDate(0, -3, 0)

	repo.EXPECT().GetUserByID(gomock.Any(), id).Return(&models.User{
		ID: id, Username: "ada", KYCVerified: true, CreatedAt: joined,
		PasswordHash: "secret", USDTBalance: decimal.NewFromInt(999),
	}, nil)
	repo.EXPECT().GetTradeStats(gomock.Any(), id).Return(&models.TradeStats{
		CompletedTrades: 31, RatingAverage: decimal.RequireFromString("4.8"), RatingCount: 12,
	}, nil)

	profile, err := uc.GetPublicProfile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "ada", profile.Username)
	assert.Equal(t, 31, profile.CompletedTrades)
	assert.Equal(t, 12, profile.Rating.Count)
	assert.Equal(t, joined, profile.JoinedAt)
}

func TestUpdateProfile(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	id := uuid.New()

	bad := "not-a-tron-address"
	_, err := uc.UpdateProfile(context.Background(), id, &models.UpdateProfileRequest{TronAddress: &bad})
	assert.ErrorIs(t, err, apperrors.ErrInvalidAddress)

	name := "  Ada \t Obi "
	repo.EXPECT().UpdateProfile(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error) {
			assert.Equal(t, "Ada Obi", *req.FullName)
			return &models.User{ID: id, FullName: *req.FullName}, nil
		})
	user, err := uc.UpdateProfile(context.Background(), id, &models.UpdateProfileRequest{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ada Obi", user.FullName)
}

func TestAdminFlags(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	admin := models.Actor{UserID: uuid.New(), IsAdmin: true}
	target := uuid.New()

	_, err := uc.SetAdmin(context.Background(), models.Actor{UserID: uuid.New()}, target, true)
	assert.ErrorIs(t, err, apperrors.ErrAdminRequired)

	_, err = uc.SetAdmin(context.Background(), admin, admin.UserID, false)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = uc.SetActive(context.Background(), admin, admin.UserID, false)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	repo.EXPECT().SetAdmin(gomock.Any(), target, true).Return(&models.User{ID: target, IsAdmin: true}, nil)
	user, err := uc.SetAdmin(context.Background(), admin, target, true)
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)

	repo.EXPECT().SetActive(gomock.Any(), target, false).Return(&models.User{ID: target}, nil)
	user, err = uc.SetActive(context.Background(), admin, target, false)
	require.NoError(t, err)
	assert.False(t, user.IsActive)
}

func TestAdjustBalance(t *testing.T) {
	uc, repo, gw := newTestUC(t)
	admin := models.Actor{UserID: uuid.New(), IsAdmin: true}
	target := uuid.New()

	repo.EXPECT().AdjustBalance(gomock.Any(), models.BalanceAdjustment{
		UserID:   target,
		AdminID:  admin.UserID,
		Currency: models.CurrencyUSDT,
		Amount:   decimal.RequireFromString("-2.5"),
		Note:     "chargeback",
		Now:      fixedNow,
	}).Return(&models.BalanceSnapshot{UserID: target, USDTBalance: decimal.RequireFromString("7.5")}, nil)
	gw.EXPECT().PublishBalanceUpdated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.BalanceEvent) error {
			assert.Equal(t, target, e.UserID)
			assert.Equal(t, "admin_adjustment", e.Reason)
			return errors.New("nats down")
		})

	snap, err := uc.AdjustBalance(context.Background(), admin, target, &models.AdjustBalanceRequest{
		Currency: models.CurrencyUSDT,
		Amount:   decimal.RequireFromString("-2.5"),
		Note:     "chargeback",
	})
	require.NoError(t, err)
	assert.Equal(t, "7.5", snap.USDTBalance.String())
}

func TestAdjustBalance_Rejections(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	admin := models.Actor{UserID: uuid.New(), IsAdmin: true}

	_, err := uc.AdjustBalance(context.Background(), admin, uuid.New(), &models.AdjustBalanceRequest{
		Currency: models.CurrencyNGN, Amount: decimal.Zero, Note: "x",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	_, err = uc.AdjustBalance(context.Background(), models.Actor{UserID: uuid.New()}, uuid.New(), &models.AdjustBalanceRequest{
		Currency: models.CurrencyNGN, Amount: decimal.NewFromInt(1), Note: "x",
	})
	assert.ErrorIs(t, err, apperrors.ErrAdminRequired)

	repo.EXPECT().AdjustBalance(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrInsufficientBalance)
	_, err = uc.AdjustBalance(context.Background(), admin, uuid.New(), &models.AdjustBalanceRequest{
		Currency: models.CurrencyNGN, Amount: decimal.NewFromInt(-1000000), Note: "x",
	})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientBalance)
}
