package middleware

import (
	"context"
	"crypto/rsa"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/CarlinQuentin/property-manager/internal/utils"
)

type contextKey string

const (
	ContextKeyUserID = contextKey("userID")

	// Cookie name follows the __Host- prefix rule (no Domain attribute allowed)
	AccessTokenCookieName = "__Host-accessToken"
)

// AuthMiddleware protects the console's API endpoints. The JWT is read from
// the Authorization header when present, otherwise from the access-token
// cookie set for browser sessions. Missing or invalid tokens get 401.
func AuthMiddleware(pub *rsa.PublicKey) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := extractAccessToken(r)
			if err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, err.Error(), nil,
				)
				return
			}

			tok, vErr := ValidateToken(tokenStr, pub)
			if vErr != nil || !tok.Valid {
				if errors.Is(vErr, jwt.ErrTokenExpired) {
					utils.RespondErrorWithCode(
						w, http.StatusUnauthorized, utils.ErrCodeTokenExpired, "Token expired", nil, vErr,
					)
					return
				}
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token", nil, vErr,
				)
				return
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid claims", nil,
				)
				return
			}
			sub, ok := claims["sub"].(string)
			if !ok {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing subject", nil,
				)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUserID, sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// helper: Bearer header wins; fall back to the session cookie
func extractAccessToken(r *http.Request) (string, error) {
	if h := r.Header.Get("Authorization"); h != "" {
		if !strings.HasPrefix(h, "Bearer ") {
			return "", errors.New("malformed Authorization header")
		}
		return strings.TrimPrefix(h, "Bearer "), nil
	}

	c, err := r.Cookie(AccessTokenCookieName)
	if err != nil || c.Value == "" {
		return "", errors.New("missing access token")
	}
	return c.Value, nil
}
