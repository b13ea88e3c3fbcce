package service_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikahlink/backend/internal/service"
	"github.com/nikahlink/backend/internal/types"
)

func TestIssueAndValidateToken(t *testing.T) {
	svc := service.NewSessionService("test-secret")

	token, err := svc.IssueToken("user@example.com", "member")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "member", claims.Role)
}

func TestValidateTokenMalformed(t *testing.T) {
	svc := service.NewSessionService("test-secret")

	claims, err := svc.ValidateToken("not.a.token")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := service.NewSessionService("secret-a")
	verifier := service.NewSessionService("secret-b")

	token, err := issuer.IssueToken("user@example.com", "member")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestValidateTokenExpired(t *testing.T) {
	secret := "test-secret"
	now := time.Now()
	expired := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user@example.com",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
		Email: "user@example.com",
		Role:  "member",
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte(secret))
	require.NoError(t, err)

	svc := service.NewSessionService(secret)
	_, err = svc.ValidateToken(tokenString)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}
