package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret")
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, "alice", time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestTokenService_WrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a").GenerateToken(uuid.New(), "bob", time.Hour)
	require.NoError(t, err)

	_, err = NewTokenService("secret-b").ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("test-secret")
	token, err := svc.GenerateToken(uuid.New(), "carol", -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_Garbage(t *testing.T) {
	_, err := NewTokenService("test-secret").ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
