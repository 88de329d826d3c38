package jwtmanager

import (
	"context"
	"mindfulness-service/internal/app/config"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestManager(t *testing.T, secret string) *JWTManager {
	t.Helper()
	cfg := &config.InternalConfig{JWT: config.AppJWT{Secret: secret, ExpTimeInHour: 1}}
	manager, err := NewJWTManager(cfg, zap.NewNop())
	require.NoError(t, err)
	return manager
}

func TestNewJWTManager(t *testing.T) {
	t.Run("Empty Secret", func(t *testing.T) {
		_, err := NewJWTManager(&config.InternalConfig{}, zap.NewNop())
		assert.ErrorIs(t, err, ErrEmptySecret)
	})

	t.Run("Default TTL", func(t *testing.T) {
		manager, err := NewJWTManager(&config.InternalConfig{JWT: config.AppJWT{Secret: "secret"}}, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, 24*time.Hour, manager.TTL())
	})
}

func TestCreateAndVerifyToken(t *testing.T) {
	ctx := context.Background()
	manager := newTestManager(t, "super-secret")

	t.Run("Round Trip", func(t *testing.T) {
		created, err := manager.CreateToken(ctx, &CreateTokenInput{SessionID: "session-1", Subject: "user-1"})
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), created.ExpiresAt, 5*time.Second)

		verified, err := manager.VerifyToken(ctx, &VerifyTokenInput{Token: created.Token})
		require.NoError(t, err)
		assert.True(t, verified.Valid)
		assert.Equal(t, "session-1", verified.SessionID)
		assert.Equal(t, "user-1", verified.Subject)
	})

	t.Run("Missing Session ID", func(t *testing.T) {
		_, err := manager.CreateToken(ctx, &CreateTokenInput{})
		assert.ErrorIs(t, err, ErrEmptySessionID)
	})

	t.Run("Empty Token", func(t *testing.T) {
		verified, err := manager.VerifyToken(ctx, &VerifyTokenInput{Token: " "})
		assert.ErrorIs(t, err, ErrEmptyToken)
		assert.False(t, verified.Valid)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		created, err := newTestManager(t, "another-secret").CreateToken(ctx, &CreateTokenInput{SessionID: "session-1"})
		require.NoError(t, err)

		verified, err := manager.VerifyToken(ctx, &VerifyTokenInput{Token: created.Token})
		require.NoError(t, err)
		assert.False(t, verified.Valid, "token signed with another secret must be rejected")
	})

	t.Run("Expired Token", func(t *testing.T) {
		claims := jwt.MapClaims{
			claimSessionID: "session-1",
			"exp":          time.Now().Add(-time.Minute).Unix(),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("super-secret"))
		require.NoError(t, err)

		verified, err := manager.VerifyToken(ctx, &VerifyTokenInput{Token: signed})
		require.NoError(t, err)
		assert.False(t, verified.Valid)
	})

	t.Run("Token Without Session Claim", func(t *testing.T) {
		claims := jwt.MapClaims{"exp": time.Now().Add(time.Minute).Unix()}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("super-secret"))
		require.NoError(t, err)

		verified, err := manager.VerifyToken(ctx, &VerifyTokenInput{Token: signed})
		require.NoError(t, err)
		assert.False(t, verified.Valid)
	})

	t.Run("Unsigned Token", func(t *testing.T) {
		claims := jwt.MapClaims{claimSessionID: "session-1"}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		verified, err := manager.VerifyToken(ctx, &VerifyTokenInput{Token: signed})
		require.NoError(t, err)
		assert.False(t, verified.Valid)
	})
}
