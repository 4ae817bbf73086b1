package token_adapter

import (
	"context"
	"testing"
	"time"

	"classifieds-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    uuid.New(),
		Email: "user@example.com",
		Role:  domain.RoleUser,
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc, err := NewTokenService("test-signing-key")
	require.NoError(t, err)
	ctx := context.Background()
	user := testUser()

	token, err := svc.GenerateToken(ctx, user, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, domain.RoleUser, claims.Role)
}

func TestTokenService_RejectsForeignSignature(t *testing.T) {
	svc1, err := NewTokenService("key-one")
	require.NoError(t, err)
	svc2, err := NewTokenService("key-two")
	require.NoError(t, err)
	ctx := context.Background()

	token, err := svc1.GenerateToken(ctx, testUser(), time.Hour)
	require.NoError(t, err)

	_, err = svc2.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewTokenService("test-signing-key")
	require.NoError(t, err)
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, testUser(), -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	svc, err := NewTokenService("test-signing-key")
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestNewTokenService_EmptyKey(t *testing.T) {
	_, err := NewTokenService("")
	assert.Error(t, err)
}
