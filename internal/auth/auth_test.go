package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func signToken(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerifyValidToken(t *testing.T) {
	v, err := NewVerifier(testSecret)
	require.NoError(t, err)

	token := signToken(t, testSecret, jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	sub, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", sub.ID)
	assert.False(t, sub.Anonymous())
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	v, err := NewVerifier(testSecret)
	require.NoError(t, err)

	token := signToken(t, testSecret, jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	_, err = v.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	v, err := NewVerifier(testSecret)
	require.NoError(t, err)

	token := signToken(t, "another-secret", jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	_, err = v.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRequiresSubClaim(t *testing.T) {
	v, err := NewVerifier(testSecret)
	require.NoError(t, err)

	token := signToken(t, testSecret, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	_, err = v.Verify(token)
	assert.ErrorContains(t, err, "sub")
}

func TestVerifyBearer(t *testing.T) {
	v, err := NewVerifier(testSecret)
	require.NoError(t, err)

	token := signToken(t, testSecret, jwt.RegisteredClaims{
		Subject:   "user-9",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	sub, err := v.VerifyBearer("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "user-9", sub.ID)

	_, err = v.VerifyBearer(token)
	assert.Error(t, err, "missing Bearer prefix must be rejected")
}

func TestResolveFallsBackToAnonymous(t *testing.T) {
	v, err := NewVerifier(testSecret)
	require.NoError(t, err)

	assert.True(t, v.Resolve("").Anonymous())
	assert.True(t, v.Resolve("garbage").Anonymous())

	token := signToken(t, testSecret, jwt.RegisteredClaims{
		Subject:   "user-5",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	assert.Equal(t, "user-5", v.Resolve(token).ID)
}

func TestNewVerifierRequiresSecret(t *testing.T) {
	_, err := NewVerifier("  ")
	assert.Error(t, err)
}
