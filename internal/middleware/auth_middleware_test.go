package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := tok.SignedString(key)
	require.NoError(t, err)
	return signed
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub": "user-1",
		"iss": TokenIssuer,
		"exp": float64(time.Now().Add(time.Hour).Unix()),
	}
}

func protectedHandler(t *testing.T, key *rsa.PrivateKey, gotUserID *string) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := r.Context().Value(ContextKeyUserID).(string); ok {
			*gotUserID = id
		}
		w.WriteHeader(http.StatusOK)
	})
	return AuthMiddleware(&key.PublicKey)(next)
}

func TestAuthMiddlewareBearerToken(t *testing.T) {
	key := newTestKey(t)
	var userID string
	handler := protectedHandler(t, key, &userID)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, key, validClaims()))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", userID)
}

func TestAuthMiddlewareCookieToken(t *testing.T) {
	key := newTestKey(t)
	var userID string
	handler := protectedHandler(t, key, &userID)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookieName, Value: signToken(t, key, validClaims())})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", userID)
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	key := newTestKey(t)
	var userID string
	handler := protectedHandler(t, key, &userID)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, userID)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	key := newTestKey(t)
	var userID string
	handler := protectedHandler(t, key, &userID)

	claims := validClaims()
	claims["exp"] = float64(time.Now().Add(-time.Hour).Unix())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, key, claims))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareWrongIssuer(t *testing.T) {
	key := newTestKey(t)
	var userID string
	handler := protectedHandler(t, key, &userID)

	claims := validClaims()
	claims["iss"] = "someone-else"

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, key, claims))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareWrongKey(t *testing.T) {
	key := newTestKey(t)
	other := newTestKey(t)
	var userID string
	handler := protectedHandler(t, key, &userID)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, other, validClaims()))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
