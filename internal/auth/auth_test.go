package auth

import (
	"bank-services/internal/config"
	"bank-services/internal/pkg/apperrors"
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testDirectory(t *testing.T) *Directory {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("reader-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	d, err := newDirectory([]config.UserConfig{
		{Username: "spike", Password: "spike123", Roles: []string{config.PermissionRead, config.PermissionCreateOrModify}},
		{Username: "reader", PasswordHash: string(hash), Roles: []string{config.PermissionRead}},
	}, bcrypt.MinCost)
	require.NoError(t, err)
	return d
}

func TestDirectory_Authenticate(t *testing.T) {
	d := testDirectory(t)

	user, err := d.Authenticate("spike", "spike123")
	require.NoError(t, err)
	assert.Equal(t, "spike", user.Username)
	assert.True(t, user.HasRole(config.PermissionCreateOrModify))
	assert.False(t, user.HasRole(config.PermissionDeleteOrPurge))

	user, err = d.Authenticate("reader", "reader-pass")
	require.NoError(t, err)
	assert.Equal(t, []string{config.PermissionRead}, user.Roles)

	_, err = d.Authenticate("spike", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = d.Authenticate("nobody", "spike123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestNewDirectory_RejectsBadUsers(t *testing.T) {
	tests := []struct {
		name  string
		users []config.UserConfig
	}{
		{"missing username", []config.UserConfig{{Password: "x"}}},
		{"missing password", []config.UserConfig{{Username: "a"}}},
		{"malformed hash", []config.UserConfig{{Username: "a", PasswordHash: "plain"}}},
		{"duplicate", []config.UserConfig{{Username: "a", Password: "x"}, {Username: "a", Password: "y"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newDirectory(tt.users, bcrypt.MinCost)
			assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
		})
	}
}

func testTokenManager() *TokenManager {
	return NewTokenManager(config.AuthConfig{
		JWTSecret: "testsecret",
		Issuer:    "bank-services",
		TokenTTL:  time.Hour,
	})
}

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := testTokenManager()
	user := &User{Username: "spike", Roles: []string{config.PermissionRead}}

	token, err := m.Issue(user)
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "spike", claims.Subject)
	assert.Equal(t, "bank-services", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, claims.HasRole(config.PermissionRead))
	assert.False(t, claims.HasRole(config.PermissionDeleteOrPurge))
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenManager_TokensAreUnique(t *testing.T) {
	m := testTokenManager()
	user := &User{Username: "spike"}

	first, err := m.Issue(user)
	require.NoError(t, err)
	second, err := m.Issue(user)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestTokenManager_RejectsInvalidTokens(t *testing.T) {
	m := testTokenManager()
	user := &User{Username: "spike"}

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenManager(config.AuthConfig{JWTSecret: "other", Issuer: "bank-services", TokenTTL: time.Hour})
		token, err := other.Issue(user)
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewTokenManager(config.AuthConfig{JWTSecret: "testsecret", Issuer: "someone-else", TokenTTL: time.Hour})
		token, err := other.Issue(user)
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("expired", func(t *testing.T) {
		past := testTokenManager()
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := past.Issue(user)
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("unsigned", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Issuer: "bank-services"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestClaimsContext(t *testing.T) {
	_, ok := ClaimsFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithClaims(context.Background(), &Claims{Roles: []string{"r"}})
	claims, ok := ClaimsFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"r"}, claims.Roles)
}
