package jwt

import (
	"testing"
	"time"

	"hospital-management/config"
	"hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	userID := uuid.New()

	token, tokenID, err := svc.GenerateToken(userID, entity.RoleDoctor)
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleDoctor, claims.Role)
	assert.Equal(t, tokenID, claims.TokenID)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_RejectsOtherSecret(t *testing.T) {
	issuer := NewJWTService(config.JWTConfig{Secret: "one", Expiry: time.Hour})
	verifier := NewJWTService(config.JWTConfig{Secret: "two", Expiry: time.Hour})

	token, _, err := issuer.GenerateToken(uuid.New(), entity.RolePatient)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: -time.Minute})

	token, _, err := svc.GenerateToken(uuid.New(), entity.RolePatient)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
