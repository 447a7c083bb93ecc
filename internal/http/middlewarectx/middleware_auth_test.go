package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pmurala/scholarship-portal/internal/lib/errs"
	"github.com/pmurala/scholarship-portal/internal/models"
)

type ServiceMock struct{ mock.Mock }

func (m *ServiceMock) ValidateToken(ctx context.Context, token string) (*models.AuthContext, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthContext), args.Error(1)
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func TestJWTMiddleware(t *testing.T) {
	log := slog.New(discardHandler{})

	t.Run("valid token puts auth context into request", func(t *testing.T) {
		service := new(ServiceMock)
		service.On("ValidateToken", mock.Anything, "good-token").
			Return(&models.AuthContext{
				UserUID: "uid-1",
				Email:   "priya@example.com",
				Role:    models.RoleApplicant,
			}, nil).Once()

		var gotAuth *models.AuthContext
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authCtx, ok := AuthFromContext(r.Context())
			require.True(t, ok)
			gotAuth = authCtx
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()

		JWTMiddleware(service, log)(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotAuth)
		assert.Equal(t, "uid-1", gotAuth.UserUID)
		assert.Equal(t, models.RoleApplicant, gotAuth.Role)
		service.AssertExpectations(t)
	})

	t.Run("missing authorization header gives 401", func(t *testing.T) {
		service := new(ServiceMock)
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler must not be called")
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		JWTMiddleware(service, log)(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		service.AssertNotCalled(t, "ValidateToken")
	})

	t.Run("header without bearer prefix gives 401", func(t *testing.T) {
		service := new(ServiceMock)
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler must not be called")
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()

		JWTMiddleware(service, log)(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token gives 401", func(t *testing.T) {
		service := new(ServiceMock)
		service.On("ValidateToken", mock.Anything, "stale-token").
			Return(nil, errs.ErrTokenExpired).Once()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler must not be called")
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer stale-token")
		rec := httptest.NewRecorder()

		JWTMiddleware(service, log)(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "token expired")
	})

	t.Run("garbage token gives 401", func(t *testing.T) {
		service := new(ServiceMock)
		service.On("ValidateToken", mock.Anything, "garbage").
			Return(nil, errs.ErrInvalidToken).Once()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler must not be called")
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()

		JWTMiddleware(service, log)(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid token")
	})
}

func TestRequireRole(t *testing.T) {
	log := slog.New(discardHandler{})

	makeRequest := func(role string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		ctx := context.WithValue(req.Context(), AuthCtx, &models.AuthContext{
			UserUID: "uid-1",
			Role:    role,
		})
		return req.WithContext(ctx)
	}

	t.Run("matching role passes through", func(t *testing.T) {
		called := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		RequireRole(models.RoleAdmin, log)(next).ServeHTTP(rec, makeRequest(models.RoleAdmin))

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("foreign role gives 403", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler must not be called")
		})

		rec := httptest.NewRecorder()
		RequireRole(models.RoleAdmin, log)(next).ServeHTTP(rec, makeRequest(models.RoleApplicant))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "forbidden")
	})

	t.Run("missing auth context gives 401", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler must not be called")
		})

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		RequireRole(models.RoleAdmin, log)(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
