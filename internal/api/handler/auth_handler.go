package handler

import (
	"bank-services/internal/api/handler/dto"
	"bank-services/internal/auth"
	"bank-services/internal/pkg/apperrors"
	"fmt"
	"log/slog"
	"net/http"
)

type Authenticator interface {
	Authenticate(username, password string) (*auth.User, error)
}

type TokenIssuer interface {
	Issue(user *auth.User) (string, error)
}

type AuthHandler struct {
	users  Authenticator
	tokens TokenIssuer
	logger *slog.Logger
}

func NewAuthHandler(users Authenticator, tokens TokenIssuer, l *slog.Logger) *AuthHandler {
	return &AuthHandler{
		users:  users,
		tokens: tokens,
		logger: l.With("component", "AuthHandler"),
	}
}

// Login exchanges a user name and password for a signed JWT.
//
// @Summary Log in
// @Description Checks the credentials against the configured users and returns a JWT carrying their permissions.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse "Token successfully generated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Invalid user name or password"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode login request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Login request failed validation", slog.Any("error", err))
		respondError(w, err)
		return
	}

	user, err := h.users.Authenticate(req.UserName, req.Password)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Login rejected", slog.String("userName", req.UserName))
		respondError(w, err)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to issue token", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "User logged in", slog.String("userName", user.Username))
	respondJSON(w, http.StatusOK, dto.LoginResponse{Token: token})
}
