// Package services содержит бизнес-логику для работы с объявлениями.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pmurala/scholarship-portal/internal/lib/errs"
	"github.com/pmurala/scholarship-portal/internal/models"
)

// AnnouncementRepository определяет методы для работы с объявлениями в хранилище.
type AnnouncementRepository interface {
	// CreateAnnouncement добавляет объявление и возвращает его ID.
	CreateAnnouncement(ctx context.Context, a models.Announcement) (string, error)
	// ListAnnouncements возвращает все объявления.
	ListAnnouncements(ctx context.Context) ([]*models.Announcement, error)
}

// AnnouncementService реализует бизнес-логику работы с объявлениями.
type AnnouncementService struct {
	repo AnnouncementRepository
	log  *slog.Logger
}

// NewAnnouncementService создает новый экземпляр AnnouncementService.
func NewAnnouncementService(repo AnnouncementRepository, log *slog.Logger) *AnnouncementService {
	return &AnnouncementService{
		repo: repo,
		log:  log,
	}
}

// Create создает объявление и возвращает его ID.
func (s *AnnouncementService) Create(ctx context.Context, req models.DummyAnnouncement) (string, error) {
	const op = "services.announcement.Create"
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, errs.ErrValidation)
	}

	id, err := s.repo.CreateAnnouncement(ctx, models.Announcement{
		Title: req.Title,
		Date:  date,
		Body:  req.Body,
	})
	if err != nil {
		return "", err
	}
	s.log.Info("created announcement", slog.String("id", id))
	return id, nil
}

// List возвращает все объявления, новые первыми.
func (s *AnnouncementService) List(ctx context.Context) ([]*models.Announcement, error) {
	return s.repo.ListAnnouncements(ctx)
}
