package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmurala/scholarship-portal/internal/lib/errs"
	"github.com/pmurala/scholarship-portal/internal/models"
)

func TestJWTMaker_GenerateAndParseToken_ValidCases(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	tokenTTL := 2 * time.Hour
	maker := NewJWTMaker(secretKey, tokenTTL)

	tests := []struct {
		name string
		user models.User
	}{
		{
			name: "admin user",
			user: models.User{UID: "a1f8f2d3-0000-0000-0000-000000000001", Name: "Admin", Email: "admin@example.com", Role: models.RoleAdmin},
		},
		{
			name: "applicant user",
			user: models.User{UID: "a1f8f2d3-0000-0000-0000-000000000002", Name: "A", Email: "a@x.com", Role: models.RoleApplicant},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateToken(&tt.user)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)

			assert.Equal(t, tt.user.UID, claims.UserUID)
			assert.Equal(t, tt.user.Email, claims.Email)
			assert.Equal(t, tt.user.Name, claims.Name)
			assert.Equal(t, tt.user.Role, claims.Role)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, time.Now().Add(tokenTTL), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestJWTMaker_ParseToken_InvalidTokens(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	maker := NewJWTMaker(secretKey, 2*time.Hour)

	user := &models.User{UID: "uid", Email: "a@x.com", Name: "A", Role: models.RoleApplicant}
	validToken, err := maker.GenerateToken(user)
	require.NoError(t, err)

	otherMaker := NewJWTMaker("another_secret_key", 2*time.Hour)
	foreignToken, err := otherMaker.GenerateToken(user)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "malformed token", token: "invalid.token.here"},
		{name: "token signed with another key", token: foreignToken},
		{name: "truncated token", token: validToken[:len(validToken)-5]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.ParseToken(tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTMaker_ParseToken_Expired(t *testing.T) {
	maker := NewJWTMaker("test_secret_key_1234567890", -time.Minute)

	user := &models.User{UID: "uid", Email: "a@x.com", Name: "A", Role: models.RoleApplicant}
	token, err := maker.GenerateToken(user)
	require.NoError(t, err)

	claims, err := maker.ParseToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrTokenExpired)
	assert.Nil(t, claims)
}
