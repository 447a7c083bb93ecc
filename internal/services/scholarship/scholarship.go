// Package services содержит бизнес-логику для управления стипендиями.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pmurala/scholarship-portal/internal/lib/errs"
	"github.com/pmurala/scholarship-portal/internal/models"
)

// ScholarshipRepository определяет методы для работы со стипендиями в хранилище.
type ScholarshipRepository interface {
	// CreateScholarship добавляет новую стипендию и возвращает её ID.
	CreateScholarship(ctx context.Context, sch models.Scholarship) (string, error)
	// UpdateScholarship обновляет стипендию по ID, возвращает число изменённых строк.
	UpdateScholarship(ctx context.Context, sch models.Scholarship, id string) (int, error)
	// ReadScholarship возвращает стипендию по ID.
	ReadScholarship(ctx context.Context, id string) (*models.Scholarship, error)
	// ListScholarships возвращает стипендии по фильтру.
	ListScholarships(ctx context.Context, filter models.ScholarshipFilter) ([]*models.Scholarship, error)
}

// ScholarshipService реализует бизнес-логику работы со стипендиями.
type ScholarshipService struct {
	repo ScholarshipRepository
	log  *slog.Logger
}

// NewScholarshipService создает новый экземпляр ScholarshipService.
func NewScholarshipService(repo ScholarshipRepository, log *slog.Logger) *ScholarshipService {
	return &ScholarshipService{
		repo: repo,
		log:  log,
	}
}

// Create создает новую стипендию и возвращает её ID.
// Проверка прав администратора выполняется на уровне маршрутов.
func (s *ScholarshipService) Create(ctx context.Context, req models.DummyScholarship) (string, error) {
	const op = "services.scholarship.Create"
	sch, err := scholarshipFromRequest(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.CreateScholarship(ctx, *sch)
	if err != nil {
		return "", err
	}
	s.log.Info("created new scholarship", slog.String("id", id), slog.String("name", sch.Name))
	return id, nil
}

// Update полностью обновляет стипендию по ID.
// Отсутствующий ID даёт errs.ErrNotFound.
func (s *ScholarshipService) Update(ctx context.Context, id string, req models.DummyScholarship) error {
	const op = "services.scholarship.Update"
	sch, err := scholarshipFromRequest(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	count, err := s.repo.UpdateScholarship(ctx, *sch, id)
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%s: %w", op, errs.ErrNotFound)
	}
	s.log.Info("updated scholarship", slog.String("id", id))
	return nil
}

// Read возвращает стипендию по ID.
func (s *ScholarshipService) Read(ctx context.Context, id string) (*models.Scholarship, error) {
	return s.repo.ReadScholarship(ctx, id)
}

// List возвращает стипендии по конъюнктивному фильтру
// (факультет, уровень, подстрока названия).
func (s *ScholarshipService) List(ctx context.Context, filter models.ScholarshipFilter) ([]*models.Scholarship, error) {
	filter.Name = strings.TrimSpace(filter.Name)
	return s.repo.ListScholarships(ctx, filter)
}

func scholarshipFromRequest(req models.DummyScholarship) (*models.Scholarship, error) {
	deadline, err := time.Parse("2006-01-02", req.Deadline)
	if err != nil {
		return nil, errs.ErrValidation
	}
	if req.Amount <= 0 {
		return nil, errs.ErrValidation
	}
	return &models.Scholarship{
		Name:       req.Name,
		Amount:     req.Amount,
		Deadline:   deadline,
		Department: req.Department,
		Level:      req.Level,
	}, nil
}
