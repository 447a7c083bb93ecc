package login

import (
	"bytes"
	"context"
	"encoding/json"
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

func (m *ServiceMock) Login(ctx context.Context, email, rawPassword string) (string, *models.UserSummary, error) {
	args := m.Called(ctx, email, rawPassword)
	var user *models.UserSummary
	if args.Get(1) != nil {
		user = args.Get(1).(*models.UserSummary)
	}
	return args.String(0), user, args.Error(2)
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func TestLoginHandler(t *testing.T) {
	log := slog.New(discardHandler{})

	t.Run("success returns token and user summary", func(t *testing.T) {
		service := new(ServiceMock)
		service.On("Login", mock.Anything, "priya@example.com", "secret1").
			Return("jwt-token", &models.UserSummary{
				Name:  "Priya",
				Email: "priya@example.com",
				Role:  models.RoleApplicant,
			}, nil).Once()

		handler := New(log, service)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/login",
			bytes.NewBufferString(`{"email":"priya@example.com","password":"secret1"}`))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var payload struct {
			Message string              `json:"message"`
			Token   string              `json:"token"`
			User    *models.UserSummary `json:"user"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, "Login successful", payload.Message)
		assert.Equal(t, "jwt-token", payload.Token)
		require.NotNil(t, payload.User)
		assert.Equal(t, "Priya", payload.User.Name)
		assert.Equal(t, models.RoleApplicant, payload.User.Role)
		service.AssertExpectations(t)
	})

	t.Run("unknown email returns 404", func(t *testing.T) {
		service := new(ServiceMock)
		service.On("Login", mock.Anything, "ghost@example.com", "secret1").
			Return("", nil, errs.ErrNotFound).Once()

		handler := New(log, service)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/login",
			bytes.NewBufferString(`{"email":"ghost@example.com","password":"secret1"}`))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, "User not found", payload["error"])
	})

	t.Run("wrong password returns 401", func(t *testing.T) {
		service := new(ServiceMock)
		service.On("Login", mock.Anything, "priya@example.com", "wrong").
			Return("", nil, errs.ErrInvalidCredentials).Once()

		handler := New(log, service)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/login",
			bytes.NewBufferString(`{"email":"priya@example.com","password":"wrong"}`))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, "Invalid password", payload["error"])
	})

	t.Run("malformed email fails validation", func(t *testing.T) {
		service := new(ServiceMock)
		handler := New(log, service)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/login",
			bytes.NewBufferString(`{"email":"not-an-email","password":"secret1"}`))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		service.AssertNotCalled(t, "Login")
	})
}
