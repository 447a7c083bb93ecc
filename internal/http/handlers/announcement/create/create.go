// Package create реализует HTTP-обработчик создания объявления.
// Доступ только для администратора.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/pmurala/scholarship-portal/internal/http/response"
	"github.com/pmurala/scholarship-portal/internal/lib/errs"
	"github.com/pmurala/scholarship-portal/internal/lib/sl"
	"github.com/pmurala/scholarship-portal/internal/models"
)

// Service описывает интерфейс бизнес-логики создания объявления.
type Service interface {
	Create(ctx context.Context, req models.DummyAnnouncement) (string, error)
}

// Handler управляет HTTP-запросами на создание объявлений.
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
// @Summary Создать объявление
// @Description Публикует объявление портала. Доступно только администратору.
// @Tags Announcements
// @Accept  json
// @Produce  json
// @Param request body models.DummyAnnouncement true "Данные объявления"
// @Success 201 {object} map[string]any "Объявление создано"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /announcements [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.announcement.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyAnnouncement
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

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrValidation) {
			log.Error("invalid announcement fields", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("invalid announcement fields"))
			return
		}
		log.Error("failed to create announcement", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create announcement"))
		return
	}

	log.Info("announcement created", slog.String("id", id))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"id": id,
	}))
}
