package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/white/fluxx-sales/config"
	"github.com/white/fluxx-sales/internal/handlers"
	"github.com/white/fluxx-sales/internal/utils"
	"go.uber.org/zap"
)

type rejectAll struct{}

func (rejectAll) ValidateAccessToken(string) (*utils.AccessTokenClaims, error) {
	return nil, errors.New("rejected")
}

type noKeys struct{}

func (noKeys) PublicKeys() utils.JWKS { return utils.JWKS{Keys: []utils.JWK{}} }

func testRouter() http.Handler {
	logger := zap.NewNop()
	return newRouter(routerDeps{
		cfg:      &config.Config{Server: config.ServerConfig{AllowedOrigins: []string{"http://localhost:3000"}}},
		logger:   logger,
		tokens:   rejectAll{},
		health:   handlers.NewHealthHandler("test", nil),
		auth:     handlers.NewAuthHandler(nil, nil, logger),
		users:    handlers.NewUserHandler(nil, logger),
		accounts: handlers.NewAccountHandler(nil, logger),
		activity: handlers.NewActivityHandler(nil, nil, logger),
		reports:  handlers.NewReportHandler(nil, logger),
		jwks:     handlers.NewJWKSHandler(noKeys{}),
	})
}

func TestRouter(t *testing.T) {
	router := testRouter()

	tests := []struct {
		name   string
		method string
		path   string
		code   int
	}{
		{"health is public", http.MethodGet, "/health", http.StatusOK},
		{"key set is public", http.MethodGet, "/.well-known/jwks.json", http.StatusOK},
		{"accounts need a token", http.MethodGet, "/api/v1/accounts?referenceid=R1", http.StatusUnauthorized},
		{"activities need a token", http.MethodPost, "/api/v1/activities", http.StatusUnauthorized},
		{"report needs a token", http.MethodGet, "/api/v1/reports/pending-so", http.StatusUnauthorized},
		{"export needs a token", http.MethodGet, "/api/v1/reports/pending-so/export", http.StatusUnauthorized},
		{"unknown path", http.MethodGet, "/api/v1/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestRouter_Preflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/accounts", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
