package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTServiceRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	access, refresh, err := svc.GenerateTokenPair(42, "Planner")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	userID, role, err := svc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	assert.Equal(t, "Planner", role)
}

func TestJWTServiceRejectsRefreshAsAccess(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	_, refresh, err := svc.GenerateTokenPair(42, "Admin")
	require.NoError(t, err)

	_, _, err = svc.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestJWTServiceRefreshRotation(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	_, refresh, err := svc.GenerateTokenPair(7, "Technician")
	require.NoError(t, err)

	access2, refresh2, err := svc.RefreshTokenPair(refresh)
	require.NoError(t, err)

	userID, role, err := svc.ValidateAccessToken(access2)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
	assert.Equal(t, "Technician", role)
	assert.NotEmpty(t, refresh2)
}

func TestJWTServiceRejectsAccessAsRefresh(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	access, _, err := svc.GenerateTokenPair(7, "Admin")
	require.NoError(t, err)

	_, _, err = svc.RefreshTokenPair(access)
	assert.Error(t, err)
}

func TestJWTServiceRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", 15, 7)
	verifier := NewJWTService("secret-b", 15, 7)

	access, _, err := issuer.GenerateTokenPair(1, "Admin")
	require.NoError(t, err)

	_, _, err = verifier.ValidateAccessToken(access)
	assert.Error(t, err)
}
