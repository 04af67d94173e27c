package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := NewDownloadToken(secret, "user-123")
	require.NoError(t, err)

	uid, err := ParseDownloadToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", uid)
}

func TestParseDownloadTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewDownloadToken([]byte("secret-a"), "user-123")
	require.NoError(t, err)

	_, err = ParseDownloadToken([]byte("secret-b"), token)
	assert.Error(t, err)
}

func TestParseDownloadTokenRejectsExpired(t *testing.T) {
	secret := []byte("test-secret")
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": "user-123",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString(secret)
	require.NoError(t, err)

	_, err = ParseDownloadToken(secret, signed)
	assert.Error(t, err)
}

func TestParseDownloadTokenRejectsMissingUID(t *testing.T) {
	secret := []byte("test-secret")
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	signed, err := token.SignedString(secret)
	require.NoError(t, err)

	_, err = ParseDownloadToken(secret, signed)
	assert.Error(t, err)
}

func TestParseDownloadTokenRejectsUnsignedToken(t *testing.T) {
	secret := []byte("test-secret")
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"uid": "user-123",
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseDownloadToken(secret, signed)
	assert.Error(t, err)
}

func TestParseDownloadTokenGarbage(t *testing.T) {
	_, err := ParseDownloadToken([]byte("secret"), "not.a.token")
	assert.Error(t, err)
}
