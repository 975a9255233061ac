package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	jwtSecret = []byte("test-secret")

	token, err := GenerateToken("user-123", "jobseeker")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "jobseeker", claims.UserType)
	assert.True(t, claims.ExpiresAt.After(time.Now().Add(6*24*time.Hour)))
}

func TestParseToken_RejectsTampered(t *testing.T) {
	jwtSecret = []byte("test-secret")

	token, err := GenerateToken("user-123", "employer")
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.Error(t, err)
}

func TestParseToken_RejectsWrongSecret(t *testing.T) {
	jwtSecret = []byte("test-secret")
	token, err := GenerateToken("user-123", "employer")
	require.NoError(t, err)

	jwtSecret = []byte("other-secret")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_RejectsWrongAlgorithm(t *testing.T) {
	jwtSecret = []byte("test-secret")

	// Token signed with none must not validate
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, AuthClaims{UserID: "user-123"})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(raw)
	assert.Error(t, err)
}
