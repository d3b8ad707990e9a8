package auth

import (
	"testing"
	"time"

	"store-admin-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{ID: "user-42", Name: "Ada", Email: "ada@example.com"}

	tok, err := GenerateToken(secret, user)
	require.NoError(t, err)

	claims, err := ParseToken(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestParseTokenRejects(t *testing.T) {
	user := &models.User{ID: "user-42"}
	tok, err := GenerateToken(secret, user)
	require.NoError(t, err)

	_, err = ParseToken("another-secret-another-secret-xx", tok)
	assert.Error(t, err, "wrong secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	raw, err := expired.SignedString([]byte(secret))
	require.NoError(t, err)
	_, err = ParseToken(secret, raw)
	assert.Error(t, err, "expired")

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{}).SignedString([]byte(secret))
	require.NoError(t, err)
	_, err = ParseToken(secret, noSubject)
	assert.Error(t, err, "no subject")

	_, err = ParseToken(secret, "not-a-token")
	assert.Error(t, err)
}
