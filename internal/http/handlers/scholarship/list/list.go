// Package list реализует HTTP-обработчик листинга стипендий.
//
// Листинг открыт всем. Фильтр — конъюнкция по факультету, уровню и
// подстроке названия, задаётся query-параметрами. Статус "открыта/истекла"
// не хранится, а выводится из дедлайна на момент запроса.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/pmurala/scholarship-portal/internal/http/response"
	"github.com/pmurala/scholarship-portal/internal/lib/sl"
	"github.com/pmurala/scholarship-portal/internal/models"
)

// Service описывает интерфейс бизнес-логики листинга стипендий.
type Service interface {
	List(ctx context.Context, filter models.ScholarshipFilter) ([]*models.Scholarship, error)
}

// Item — представление стипендии в листинге с производным статусом.
type Item struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Deadline   string  `json:"deadline"`
	Department string  `json:"department"`
	Level      string  `json:"level"`
	DaysLeft   int     `json:"days_left"`
	Expired    bool    `json:"expired"`
}

// Handler управляет HTTP-запросами листинга стипендий.
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
// @Summary Список стипендий
// @Description Возвращает стипендии по фильтру (department, level, name).
// @Tags Scholarships
// @Produce  json
// @Param department query string false "Факультет"
// @Param level query string false "Уровень обучения"
// @Param name query string false "Подстрока названия"
// @Success 200 {object} map[string]any "Список стипендий"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /scholarships [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.scholarship.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	filter := models.ScholarshipFilter{
		Department: r.URL.Query().Get("department"),
		Level:      r.URL.Query().Get("level"),
		Name:       r.URL.Query().Get("name"),
	}

	scholarships, err := h.service.List(r.Context(), filter)
	if err != nil {
		log.Error("failed to list scholarships", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list scholarships"))
		return
	}

	now := time.Now()
	items := make([]Item, 0, len(scholarships))
	for _, s := range scholarships {
		items = append(items, Item{
			ID:         s.ID,
			Name:       s.Name,
			Amount:     s.Amount,
			Deadline:   s.Deadline.Format("2006-01-02"),
			Department: s.Department,
			Level:      s.Level,
			DaysLeft:   s.DaysLeft(now),
			Expired:    s.Expired(now),
		})
	}

	log.Info("scholarships listed", slog.Int("count", len(items)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"scholarships": items,
	}))
}
