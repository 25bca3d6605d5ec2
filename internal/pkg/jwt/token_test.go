package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/nairaxchange/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60,
			Issuer:     "nairaxchange-test",
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	tests := []struct {
		name string
		role string
	}{
		{name: "regular user", role: RoleFor(false)},
		{name: "admin", role: RoleFor(true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := getTestConfig()
			userID := uuid.New()

			token, expiresAt, err := GenerateToken(userID, tt.role, cfg)
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

			claims, err := ValidateToken(token, cfg.JWT.Secret)
			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
			assert.Equal(t, tt.role, claims.Role)
			assert.Equal(t, "nairaxchange-test", claims.Issuer)
		})
	}
}

func TestValidateToken_Failures(t *testing.T) {
	cfg := getTestConfig()

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := GenerateToken(uuid.New(), RoleUser, cfg)
		require.NoError(t, err)

		_, err = ValidateToken(token, "another-secret")
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		expired := *cfg
		expired.JWT.Expiration = -5
		token, _, err := GenerateToken(uuid.New(), RoleUser, &expired)
		require.NoError(t, err)

		_, err = ValidateToken(token, cfg.JWT.Secret)
		assert.Error(t, err)
	})

	t.Run("none algorithm", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: uuid.New(), Role: RoleAdmin})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = ValidateToken(signed, cfg.JWT.Secret)
		assert.Error(t, err)
	})

	t.Run("missing user id", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Role: RoleUser})
		signed, err := token.SignedString([]byte(cfg.JWT.Secret))
		require.NoError(t, err)

		_, err = ValidateToken(signed, cfg.JWT.Secret)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ValidateToken("not.a.token", cfg.JWT.Secret)
		assert.Error(t, err)
	})
}
