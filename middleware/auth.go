package middleware

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"huile-de-sfax/utils"
)

// Key type for context
type contextKey string

const UserContextKey = contextKey("user")

const authChallenge = `Basic realm="Huile de Sfax Admin", charset="UTF-8"`

// AdminCredentials is the single admin identity. When PasswordHash (bcrypt) is set it
// takes precedence over Password.
type AdminCredentials struct {
	Username     string
	Password     string
	PasswordHash string
}

// AdminAuth guards the admin routes. Every request is authenticated on its own,
// either with basic credentials or with a bearer token issued at login.
type AdminAuth struct {
	credentials AdminCredentials
	tokens      *utils.TokenSigner
	logger      *zap.Logger
}

// NewAdminAuth builds the gate. A nil tokens signer disables bearer tokens.
func NewAdminAuth(credentials AdminCredentials, tokens *utils.TokenSigner, logger *zap.Logger) *AdminAuth {
	return &AdminAuth{credentials: credentials, tokens: tokens, logger: logger}
}

// Verify reports whether the pair matches the configured admin. Both halves are
// always compared.
func (a *AdminAuth) Verify(username, password string) bool {
	usernameMatches := subtle.ConstantTimeCompare([]byte(username), []byte(a.credentials.Username)) == 1

	var passwordMatches bool
	if a.credentials.PasswordHash != "" {
		passwordMatches = bcrypt.CompareHashAndPassword([]byte(a.credentials.PasswordHash), []byte(password)) == nil
	} else {
		passwordMatches = subtle.ConstantTimeCompare([]byte(password), []byte(a.credentials.Password)) == 1
	}
	return usernameMatches && passwordMatches && a.credentials.Username != ""
}

// Middleware attaches the verified username to the request context or rejects with 401.
func (a *AdminAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, ok := a.authenticate(r)
		if !ok {
			a.logger.Warn("admin authentication failed",
				zap.String("path", r.URL.Path),
				zap.String("ip", r.RemoteAddr),
			)
			w.Header().Set("WWW-Authenticate", authChallenge)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid credentials"})
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *AdminAuth) authenticate(r *http.Request) (string, bool) {
	if username, password, ok := r.BasicAuth(); ok {
		return username, a.Verify(username, password)
	}

	authHeader := r.Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if a.tokens == nil || len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	claims, err := a.tokens.ParseJWT(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", false
	}
	if subtle.ConstantTimeCompare([]byte(claims.Username), []byte(a.credentials.Username)) != 1 {
		return "", false
	}
	return claims.Username, true
}

// UsernameFromContext returns the admin username set by the auth middleware.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UserContextKey).(string)
	return username, ok
}
