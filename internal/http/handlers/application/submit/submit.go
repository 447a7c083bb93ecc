// Package submit реализует HTTP-обработчик подачи заявки на стипендию.
//
// Handler принимает JSON с данными заявки, достаёт абитуриента из контекста
// запроса и делегирует подачу сервису. Порядок доменных ошибок фиксирован
// в сервисе: несуществующая стипендия, истёкший дедлайн, повторная подача,
// незаполненные поля.
package submit

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/pmurala/scholarship-portal/internal/http/middlewarectx"
	"github.com/pmurala/scholarship-portal/internal/http/response"
	"github.com/pmurala/scholarship-portal/internal/lib/errs"
	"github.com/pmurala/scholarship-portal/internal/lib/sl"
	"github.com/pmurala/scholarship-portal/internal/models"
)

// Service описывает интерфейс бизнес-логики подачи заявки.
type Service interface {
	Submit(ctx context.Context, applicantUID string, req models.DummyApplication) (string, error)
}

// Handler управляет HTTP-запросами подачи заявок.
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
// @Summary Подать заявку
// @Description Подаёт заявку текущего абитуриента на стипендию. Статус новой заявки — Pending.
// @Tags Applications
// @Accept  json
// @Produce  json
// @Param request body models.DummyApplication true "Данные заявки"
// @Success 201 {object} map[string]any "Заявка подана"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Стипендия не найдена"
// @Failure 409 {object} response.ErrorResponse "Заявка уже подана"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации или истёкший дедлайн"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /applications [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.application.submit"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyApplication
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("scholarship_id", req.ScholarshipID))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	authCtx, ok := middlewarectx.AuthFromContext(r.Context())
	if !ok {
		log.Error("auth context missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	id, err := h.service.Submit(r.Context(), authCtx.UserUID, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			log.Error("scholarship not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("scholarship not found"))
		case errors.Is(err, errs.ErrScholarshipExpired):
			log.Error("scholarship deadline has passed", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("scholarship deadline has passed"))
		case errors.Is(err, errs.ErrDuplicateApplication):
			log.Error("application already exists", sl.Err(err))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("Already applied"))
		case errors.Is(err, errs.ErrValidation):
			log.Error("required fields missing", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("course and institute are required"))
		default:
			log.Error("failed to submit application", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not submit application"))
		}
		return
	}

	log.Info("application submitted", slog.String("id", id))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"id":     id,
		"status": models.StatusPending,
	}))
}
