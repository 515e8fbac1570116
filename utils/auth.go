package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// AdminRole is the only role tokens are issued for.
const AdminRole = "admin"

// TokenLifetime bounds how long an issued admin token is accepted.
const TokenLifetime = 24 * time.Hour

// ErrInvalidToken is returned for tokens that fail signature, expiry or role checks.
var ErrInvalidToken = errors.New("invalid token")

// Claims represents the JWT claims
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.StandardClaims
}

// TokenSigner issues and verifies HS256 admin tokens.
type TokenSigner struct {
	key []byte
	now func() time.Time
}

// NewTokenSigner returns nil when secret is empty; a nil signer disables bearer tokens.
func NewTokenSigner(secret string) *TokenSigner {
	if secret == "" {
		return nil
	}
	return &TokenSigner{key: []byte(secret), now: time.Now}
}

// GenerateJWT generates a token for the admin username
func (s *TokenSigner) GenerateJWT(username string) (string, error) {
	claims := &Claims{
		Username: username,
		Role:     AdminRole,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  s.now().Unix(),
			ExpiresAt: s.now().Add(TokenLifetime).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return tokenString, nil
}

// ParseJWT verifies tokenString and returns its claims.
func (s *TokenSigner) ParseJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.key, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Role != AdminRole {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
