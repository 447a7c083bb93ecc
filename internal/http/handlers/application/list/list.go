// Package list реализует HTTP-обработчик листинга заявок.
//
// Видимость разграничена ролью: абитуриент получает только собственные
// заявки, администратор — все.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/pmurala/scholarship-portal/internal/http/middlewarectx"
	"github.com/pmurala/scholarship-portal/internal/http/response"
	"github.com/pmurala/scholarship-portal/internal/lib/sl"
	"github.com/pmurala/scholarship-portal/internal/models"
)

// Service описывает интерфейс бизнес-логики листинга заявок.
type Service interface {
	ListFor(ctx context.Context, authCtx *models.AuthContext) ([]*models.Application, error)
}

// Item — представление заявки в листинге.
type Item struct {
	ID              string `json:"id"`
	ScholarshipID   string `json:"scholarship_id"`
	ScholarshipName string `json:"scholarship_name"`
	ApplicantEmail  string `json:"applicant_email"`
	Course          string `json:"course"`
	Institute       string `json:"institute"`
	Status          string `json:"status"`
}

// Handler управляет HTTP-запросами листинга заявок.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список заявок
// @Description Возвращает заявки текущего пользователя; администратору — все заявки.
// @Tags Applications
// @Produce  json
// @Success 200 {object} map[string]any "Список заявок"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /applications [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.application.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	authCtx, ok := middlewarectx.AuthFromContext(r.Context())
	if !ok {
		log.Error("auth context missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	applications, err := h.service.ListFor(r.Context(), authCtx)
	if err != nil {
		log.Error("failed to list applications", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list applications"))
		return
	}

	items := make([]Item, 0, len(applications))
	for _, a := range applications {
		items = append(items, Item{
			ID:              a.ID,
			ScholarshipID:   a.ScholarshipID,
			ScholarshipName: a.ScholarshipName,
			ApplicantEmail:  a.ApplicantEmail,
			Course:          a.Course,
			Institute:       a.Institute,
			Status:          a.Status,
		})
	}

	log.Info("applications listed", slog.Int("count", len(items)), slog.String("role", authCtx.Role))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"applications": items,
	}))
}
