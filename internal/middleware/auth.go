package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/white/fluxx-sales/internal/utils"
)

type contextKey string

const claimsKey contextKey = "claims"

// TokenValidator checks a bearer token and returns its claims.
type TokenValidator interface {
	ValidateAccessToken(token string) (*utils.AccessTokenClaims, error)
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

func respondWithError(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: code})
}

// JWTAuth is a middleware that validates JWT access tokens
func JWTAuth(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondWithError(w, http.StatusUnauthorized, "MISSING_TOKEN", "Authorization header is required")
				return
			}

			scheme, accessToken, ok := strings.Cut(authHeader, " ")
			if !ok || scheme != "Bearer" || accessToken == "" {
				respondWithError(w, http.StatusUnauthorized, "INVALID_TOKEN_FORMAT", "Authorization header must be in format: Bearer <token>")
				return
			}

			claims, err := tokens.ValidateAccessToken(accessToken)
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired access token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// WithClaims stores validated token claims in ctx.
func WithClaims(ctx context.Context, claims *utils.AccessTokenClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the claims stored by JWTAuth.
func ClaimsFromContext(ctx context.Context) (*utils.AccessTokenClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*utils.AccessTokenClaims)
	return claims, ok && claims != nil
}
