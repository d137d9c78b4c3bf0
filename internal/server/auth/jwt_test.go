package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(42, "Administrador", secret, time.Minute)
	require.NoError(t, err)

	id, rol, err := ParseToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "Administrador", rol)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := GenerateToken(1, "Cliente", secret, time.Minute)
	require.NoError(t, err)

	_, _, err = ParseToken(token, []byte("other"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Expired(t *testing.T) {
	token, err := GenerateToken(1, "Cliente", secret, -time.Minute)
	require.NoError(t, err)

	_, _, err = ParseToken(token, secret)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParse_BadSubject(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "abc"}).SignedString(secret)
	require.NoError(t, err)

	_, _, err = ParseToken(token, secret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	_, _, err := ParseToken("abc", secret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
