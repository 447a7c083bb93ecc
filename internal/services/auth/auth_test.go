package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pmurala/scholarship-portal/internal/lib/errs"
	"github.com/pmurala/scholarship-portal/internal/lib/jwt"
	"github.com/pmurala/scholarship-portal/internal/lib/password"
	"github.com/pmurala/scholarship-portal/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) RegisterUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *RepoMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newTestMaker() *jwt.MakerImpl {
	return jwt.NewJWTMaker("test_secret_key_1234567890", 2*time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success, password is stored hashed", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("RegisterUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
			return u.Email == "a@x.com" &&
				u.Role == models.RoleApplicant &&
				u.PasswordHash != "" &&
				u.PasswordHash != "secret1" &&
				password.CompareHash(u.PasswordHash, "secret1") == nil
		})).Return("uid-1", nil).Once()

		service := NewAuthService(repo, newTestMaker())
		uid, err := service.Register(ctx, "A", "a@x.com", "secret1", models.RoleApplicant)
		require.NoError(t, err)
		assert.Equal(t, "uid-1", uid)
		repo.AssertExpectations(t)
	})

	t.Run("unknown role is rejected before touching storage", func(t *testing.T) {
		repo := new(RepoMock)
		service := NewAuthService(repo, newTestMaker())

		_, err := service.Register(ctx, "A", "a@x.com", "secret1", "superuser")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValidation)
		repo.AssertNotCalled(t, "RegisterUser")
	})

	t.Run("duplicate email surfaces ErrUserExists", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("RegisterUser", mock.Anything, mock.Anything).
			Return("", errs.ErrUserExists).Once()

		service := NewAuthService(repo, newTestMaker())
		_, err := service.Register(ctx, "A", "a@x.com", "secret1", models.RoleApplicant)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrUserExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hashed, err := password.GetHash("secret1")
	require.NoError(t, err)
	user := &models.User{
		UID:          "uid-1",
		Name:         "A",
		Email:        "a@x.com",
		PasswordHash: hashed,
		Role:         models.RoleApplicant,
	}

	t.Run("success returns token and summary without password hash", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetUserByEmail", mock.Anything, "a@x.com").Return(user, nil).Once()

		maker := newTestMaker()
		service := NewAuthService(repo, maker)
		token, summary, err := service.Login(ctx, "a@x.com", "secret1")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, &models.UserSummary{Name: "A", Email: "a@x.com", Role: models.RoleApplicant}, summary)

		claims, err := maker.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, "uid-1", claims.UserUID)
		assert.Equal(t, models.RoleApplicant, claims.Role)
	})

	t.Run("unknown email surfaces ErrNotFound", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetUserByEmail", mock.Anything, "ghost@x.com").Return(nil, errs.ErrNotFound).Once()

		service := NewAuthService(repo, newTestMaker())
		_, _, err := service.Login(ctx, "ghost@x.com", "secret1")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("wrong password surfaces ErrInvalidCredentials", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetUserByEmail", mock.Anything, "a@x.com").Return(user, nil).Once()

		service := NewAuthService(repo, newTestMaker())
		_, _, err := service.Login(ctx, "a@x.com", "wrong_password")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	ctx := context.Background()

	hashed, err := password.GetHash("secret1")
	require.NoError(t, err)
	user := &models.User{
		UID:          "uid-1",
		Name:         "A",
		Email:        "a@x.com",
		PasswordHash: hashed,
		Role:         models.RoleAdmin,
	}

	repo := new(RepoMock)
	repo.On("GetUserByEmail", mock.Anything, "a@x.com").Return(user, nil).Once()

	service := NewAuthService(repo, newTestMaker())
	token, _, err := service.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)

	authCtx, err := service.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", authCtx.UserUID)
	assert.Equal(t, "a@x.com", authCtx.Email)
	assert.Equal(t, models.RoleAdmin, authCtx.Role)

	_, err = service.ValidateToken(ctx, "garbage.token.value")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}
