package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrental-backoffice/internal/domain"
)

const testSecret = "unit-test-secret-0123456789abcdefghij"

func testEmployee() *domain.Employee {
	return &domain.Employee{
		ID:    "5f6a7b8c-9d0e-4f1a-b2c3-d4e5f6a7b8c9",
		Email: "manager@example.com",
		Role:  domain.RoleManager,
	}
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)

	token, err := tm.GenerateAccessToken(testEmployee())
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "5f6a7b8c-9d0e-4f1a-b2c3-d4e5f6a7b8c9", claims.EmployeeID)
	assert.Equal(t, "manager@example.com", claims.Email)
	assert.Equal(t, domain.RoleManager, claims.Role)
	assert.True(t, claims.Role.CanManageFleet())
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)
	other := NewTokenManager("another-secret-entirely-0123456789abcd", 60)

	token, err := tm.GenerateAccessToken(testEmployee())
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	tm := NewTokenManager(testSecret, -1) // already expired at issue time

	token, err := tm.GenerateAccessToken(testEmployee())
	require.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)

	_, err := tm.ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
