// Package list реализует HTTP-обработчик листинга объявлений. Открыт всем.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/pmurala/scholarship-portal/internal/http/response"
	"github.com/pmurala/scholarship-portal/internal/lib/sl"
	"github.com/pmurala/scholarship-portal/internal/models"
)

// Service описывает интерфейс бизнес-логики листинга объявлений.
type Service interface {
	List(ctx context.Context) ([]*models.Announcement, error)
}

// Item — представление объявления в листинге.
type Item struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Body  string `json:"body"`
}

// Handler управляет HTTP-запросами листинга объявлений.
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
// @Summary Список объявлений
// @Description Возвращает все объявления портала, новые первыми.
// @Tags Announcements
// @Produce  json
// @Success 200 {object} map[string]any "Список объявлений"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /announcements [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.announcement.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	announcements, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list announcements", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list announcements"))
		return
	}

	items := make([]Item, 0, len(announcements))
	for _, a := range announcements {
		items = append(items, Item{
			ID:    a.ID,
			Title: a.Title,
			Date:  a.Date.Format("2006-01-02"),
			Body:  a.Body,
		})
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"announcements": items,
	}))
}
