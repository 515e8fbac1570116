package utils

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/require"
)

func TestTokenSignerRoundTrip(t *testing.T) {
	signer := NewTokenSigner("secret")
	token, err := signer.GenerateJWT("admin")
	require.NoError(t, err)

	claims, err := signer.ParseJWT(token)
	require.NoError(t, err)
	require.Equal(t, "admin", claims.Username)
	require.Equal(t, AdminRole, claims.Role)
}

func TestTokenSignerRejectsForeignAndExpiredTokens(t *testing.T) {
	signer := NewTokenSigner("secret")

	foreign, err := NewTokenSigner("other-secret").GenerateJWT("admin")
	require.NoError(t, err)
	_, err = signer.ParseJWT(foreign)
	require.ErrorIs(t, err, ErrInvalidToken)

	signer.now = func() time.Time { return time.Now().Add(-2 * TokenLifetime) }
	expired, err := signer.GenerateJWT("admin")
	require.NoError(t, err)
	signer.now = time.Now
	_, err = signer.ParseJWT(expired)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = signer.ParseJWT("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenSignerRejectsOtherRoles(t *testing.T) {
	signer := NewTokenSigner("secret")
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Username:       "admin",
		Role:           "user",
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix()},
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = signer.ParseJWT(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestEmptySecretDisablesTokens(t *testing.T) {
	require.Nil(t, NewTokenSigner(""))
}
