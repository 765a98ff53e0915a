package middleware

import (
	"bank-services/internal/auth"
	"bank-services/internal/config"
	"log/slog"
	"net/http"
	"strings"
)

// AuthMiddleware authenticates the bearer token and stores its claims in the
// request context for RequireRole.
func AuthMiddleware(cfg config.AuthConfig, tokens *auth.TokenManager, logger *slog.Logger) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := validateJWT(r, tokens, logger)
			if !ok {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
		})
	}
}

// RequireRole lets the request through only when the authenticated claims carry
// role. It must run after AuthMiddleware.
func RequireRole(cfg config.AuthConfig, role string, logger *slog.Logger) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := auth.ClaimsFromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if !claims.HasRole(role) {
				logger.WarnContext(r.Context(), "AuthMiddleware: Missing permission", "subject", claims.Subject, "role", role)
				writeError(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func validateJWT(r *http.Request, tokens *auth.TokenManager, logger *slog.Logger) (*auth.Claims, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		logger.Warn("AuthMiddleware: Missing Authorization header")
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		logger.Warn("AuthMiddleware: Invalid Authorization header format")
		return nil, false
	}

	claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
	if err != nil {
		logger.Warn("AuthMiddleware: Invalid token", "error", err)
		return nil, false
	}

	logger.Debug("AuthMiddleware: Authenticated request", "subject", claims.Subject)
	return claims, true
}
