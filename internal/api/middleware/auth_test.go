package middleware

import (
	"bank-services/internal/auth"
	"bank-services/internal/config"
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	cfg := config.AuthConfig{
		Enabled:   true,
		JWTSecret: "testsecret",
		Issuer:    "bank-services",
		TokenTTL:  time.Hour,
	}
	tokens := auth.NewTokenManager(cfg)

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("should allow request when middleware is disabled", func(t *testing.T) {
		disabled := cfg
		disabled.Enabled = false

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		AuthMiddleware(disabled, tokens, logger)(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should reject request with missing Authorization header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		AuthMiddleware(cfg, tokens, logger)(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":{"message":"Unauthorized"}}`, rec.Body.String())
	})

	t.Run("should reject request with malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		AuthMiddleware(cfg, tokens, logger)(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject request with invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer invalidtoken")
		rec := httptest.NewRecorder()
		AuthMiddleware(cfg, tokens, logger)(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject token signed with another secret", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "spike",
			"iss": "bank-services",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		tokenString, err := token.SignedString([]byte("other"))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+tokenString)
		rec := httptest.NewRecorder()
		AuthMiddleware(cfg, tokens, logger)(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should allow request with valid token and expose claims", func(t *testing.T) {
		tokenString, err := tokens.Issue(&auth.User{Username: "spike", Roles: []string{config.PermissionRead}})
		require.NoError(t, err)

		var subject string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := auth.ClaimsFromContext(r.Context())
			if ok {
				subject = claims.Subject
			}
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+tokenString)
		rec := httptest.NewRecorder()
		AuthMiddleware(cfg, tokens, logger)(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "spike", subject)
	})
}

func TestRequireRole(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	cfg := config.AuthConfig{Enabled: true}

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name     string
		claims   *auth.Claims
		expected int
	}{
		{"no claims", nil, http.StatusUnauthorized},
		{"missing role", &auth.Claims{Roles: []string{config.PermissionRead}}, http.StatusForbidden},
		{"has role", &auth.Claims{Roles: []string{config.PermissionRead, config.PermissionDeleteOrPurge}}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/homeloans/1", nil)
			if tt.claims != nil {
				req = req.WithContext(auth.WithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			RequireRole(cfg, config.PermissionDeleteOrPurge, logger)(okHandler).ServeHTTP(rec, req)
			assert.Equal(t, tt.expected, rec.Code)
		})
	}

	t.Run("disabled auth skips the check", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/homeloans/1", nil)
		rec := httptest.NewRecorder()

		RequireRole(config.AuthConfig{Enabled: false}, config.PermissionDeleteOrPurge, logger)(okHandler).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
