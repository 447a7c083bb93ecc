// Package updatestatus реализует HTTP-обработчик смены статуса заявки.
// Доступ только для администратора.
package updatestatus

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/pmurala/scholarship-portal/internal/http/response"
	"github.com/pmurala/scholarship-portal/internal/lib/errs"
	"github.com/pmurala/scholarship-portal/internal/lib/sl"
	"github.com/pmurala/scholarship-portal/internal/models"
)

// Request — входные данные смены статуса.
type Request struct {
	Status string `json:"status" validate:"required"`
}

// Service описывает интерфейс бизнес-логики смены статуса заявки.
type Service interface {
	UpdateStatus(ctx context.Context, id, status string) (*models.Application, error)
}

// Handler управляет HTTP-запросами смены статуса.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Сменить статус заявки
// @Description Устанавливает статус Pending, Approved или Rejected. Доступно только администратору.
// @Tags Applications
// @Accept  json
// @Produce  json
// @Param id path string true "ID заявки"
// @Param request body Request true "Новый статус"
// @Success 200 {object} map[string]any "Статус обновлён"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Заявка не найдена"
// @Failure 422 {object} response.ErrorResponse "Недопустимый статус"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /applications/{id}/status [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.application.updatestatus"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	app, err := h.service.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrValidation):
			log.Error("invalid status value", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("status must be Pending, Approved or Rejected"))
		case errors.Is(err, errs.ErrNotFound):
			log.Error("application not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("application not found"))
		default:
			log.Error("failed to update status", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not update application status"))
		}
		return
	}

	log.Info("application status updated", slog.String("id", id), slog.String("status", app.Status))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"id":     app.ID,
		"status": app.Status,
	}))
}
