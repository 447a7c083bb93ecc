// Package read реализует HTTP-обработчик чтения одной стипендии по ID.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/pmurala/scholarship-portal/internal/http/response"
	"github.com/pmurala/scholarship-portal/internal/lib/errs"
	"github.com/pmurala/scholarship-portal/internal/lib/sl"
	"github.com/pmurala/scholarship-portal/internal/models"
)

// Service описывает интерфейс бизнес-логики чтения стипендии.
type Service interface {
	Read(ctx context.Context, id string) (*models.Scholarship, error)
}

// Handler управляет HTTP-запросами чтения стипендии.
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
// @Summary Получить стипендию
// @Description Возвращает стипендию по ID с производным статусом дедлайна.
// @Tags Scholarships
// @Produce  json
// @Param id path string true "ID стипендии"
// @Success 200 {object} map[string]any "Стипендия"
// @Failure 404 {object} response.ErrorResponse "Стипендия не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /scholarships/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.scholarship.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	sch, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			log.Error("scholarship not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("scholarship not found"))
			return
		}
		log.Error("failed to read scholarship", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read scholarship"))
		return
	}

	now := time.Now()
	render.JSON(w, r, response.OKWithData(map[string]any{
		"id":         sch.ID,
		"name":       sch.Name,
		"amount":     sch.Amount,
		"deadline":   sch.Deadline.Format("2006-01-02"),
		"department": sch.Department,
		"level":      sch.Level,
		"days_left":  sch.DaysLeft(now),
		"expired":    sch.Expired(now),
	}))
}
