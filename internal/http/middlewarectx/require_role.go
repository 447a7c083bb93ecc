package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/pmurala/scholarship-portal/internal/http/response"
)

// RequireRole возвращает middleware, пропускающий только пользователей
// с ролью role. Ставится после JWTMiddleware: аутентифицированный
// пользователь с чужой ролью получает 403.
func RequireRole(role string, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authCtx, ok := AuthFromContext(r.Context())
			if !ok {
				log.Error("auth context missing")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}
			if authCtx.Role != role {
				log.Error("insufficient role",
					slog.String("required", role),
					slog.String("actual", authCtx.Role))
				w.WriteHeader(http.StatusForbidden)
				render.JSON(w, r, response.Error("forbidden"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
