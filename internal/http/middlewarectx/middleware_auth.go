// Package middlewarectx содержит HTTP middleware для проверки bearer-токенов
// и разграничения операций по ролям.
//
// JWTMiddleware проверяет наличие и валидность JWT в заголовке Authorization
// и при успехе кладёт контекст аутентифицированного пользователя в контекст
// запроса. RequireRole пускает дальше только пользователей с нужной ролью —
// это единственное место проверки ролей, обработчики её не повторяют.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/pmurala/scholarship-portal/internal/http/response"
	"github.com/pmurala/scholarship-portal/internal/lib/errs"
	"github.com/pmurala/scholarship-portal/internal/lib/sl"
	"github.com/pmurala/scholarship-portal/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// AuthCtx — ключ контекста аутентифицированного пользователя.
const AuthCtx Key = "auth"

// Service описывает интерфейс сервиса для валидации JWT токена.
type Service interface {
	ValidateToken(ctx context.Context, token string) (*models.AuthContext, error)
}

// AuthFromContext достаёт контекст пользователя, положенный JWTMiddleware.
func AuthFromContext(ctx context.Context) (*models.AuthContext, bool) {
	authCtx, ok := ctx.Value(AuthCtx).(*models.AuthContext)
	return authCtx, ok
}

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке
// Authorization. Отсутствующий, просроченный или некорректный токен даёт 401.
func JWTMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"
			authHeader := r.Header.Get("Authorization")

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			authCtx, err := authService.ValidateToken(r.Context(), tokenStr)
			if err != nil {
				if errors.Is(err, errs.ErrTokenExpired) {
					log.Error("token expired", sl.Err(err))
					w.WriteHeader(http.StatusUnauthorized)
					render.JSON(w, r, response.Error("token expired"))
					return
				}
				log.Error("invalid token", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid token"))
				return
			}
			ctx := context.WithValue(r.Context(), AuthCtx, authCtx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
