// Package services содержит бизнес-логику жизненного цикла заявок:
// подачу, смену статуса и чтение с разграничением по ролям.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pmurala/scholarship-portal/internal/lib/errs"
	"github.com/pmurala/scholarship-portal/internal/models"
)

// ApplicationRepository определяет методы для работы с заявками в хранилище.
type ApplicationRepository interface {
	// CreateApplication добавляет заявку со статусом Pending и возвращает её ID.
	CreateApplication(ctx context.Context, app models.Application) (string, error)
	// ApplicationExists сообщает, есть ли заявка пары (абитуриент, стипендия).
	ApplicationExists(ctx context.Context, applicantUID, scholarshipID string) (bool, error)
	// ReadApplication возвращает заявку по ID.
	ReadApplication(ctx context.Context, id string) (*models.Application, error)
	// UpdateApplicationStatus меняет статус, возвращает число изменённых строк.
	UpdateApplicationStatus(ctx context.Context, id, status string) (int, error)
	// ListApplicationsByApplicant возвращает заявки одного абитуриента.
	ListApplicationsByApplicant(ctx context.Context, applicantUID string) ([]*models.Application, error)
	// ListAllApplications возвращает все заявки.
	ListAllApplications(ctx context.Context) ([]*models.Application, error)
}

// ScholarshipReader отдаёт стипендию по ID для проверок подачи.
type ScholarshipReader interface {
	ReadScholarship(ctx context.Context, id string) (*models.Scholarship, error)
}

// ApplicationService реализует бизнес-логику работы с заявками.
type ApplicationService struct {
	repo         ApplicationRepository
	scholarships ScholarshipReader
	log          *slog.Logger
	now          func() time.Time
}

// NewApplicationService создает новый экземпляр ApplicationService.
func NewApplicationService(repo ApplicationRepository, scholarships ScholarshipReader, log *slog.Logger) *ApplicationService {
	return &ApplicationService{
		repo:         repo,
		scholarships: scholarships,
		log:          log,
		now:          time.Now,
	}
}

// Submit подаёт заявку абитуриента на стипендию. Проверки идут в строгом
// порядке, чтобы ошибка была детерминированной:
//  1. стипендия существует, иначе errs.ErrNotFound;
//  2. дедлайн не прошёл, иначе errs.ErrScholarshipExpired;
//  3. заявка этой пары ещё не подана, иначе errs.ErrDuplicateApplication;
//  4. обязательные поля course и institute заполнены, иначе errs.ErrValidation.
//
// Запись не создаётся, если любая проверка не прошла. Финальную защиту от
// гонки двух одновременных подач даёт уникальный индекс хранилища.
func (s *ApplicationService) Submit(ctx context.Context, applicantUID string, req models.DummyApplication) (string, error) {
	const op = "services.application.Submit"

	sch, err := s.scholarships.ReadScholarship(ctx, req.ScholarshipID)
	if err != nil {
		return "", err
	}

	if sch.Expired(s.now()) {
		return "", fmt.Errorf("%s: %w", op, errs.ErrScholarshipExpired)
	}

	exists, err := s.repo.ApplicationExists(ctx, applicantUID, req.ScholarshipID)
	if err != nil {
		return "", err
	}
	if exists {
		return "", fmt.Errorf("%s: %w", op, errs.ErrDuplicateApplication)
	}

	if req.Course == "" || req.Institute == "" {
		return "", fmt.Errorf("%s: %w", op, errs.ErrValidation)
	}

	app := models.Application{
		ApplicantUID:  applicantUID,
		ScholarshipID: req.ScholarshipID,
		Course:        req.Course,
		Institute:     req.Institute,
		BankAccount:   req.BankAccount,
		Status:        models.StatusPending,
	}
	id, err := s.repo.CreateApplication(ctx, app)
	if err != nil {
		return "", err
	}

	s.log.Info("application submitted",
		slog.String("id", id),
		slog.String("scholarship_id", req.ScholarshipID))
	return id, nil
}

// UpdateStatus меняет статус заявки. Статус обязан быть одним из
// Pending, Approved, Rejected; направление перехода не ограничено.
// Отсутствующая заявка даёт errs.ErrNotFound.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id, status string) (*models.Application, error) {
	const op = "services.application.UpdateStatus"

	if !models.IsValidStatus(status) {
		return nil, fmt.Errorf("%s: %w", op, errs.ErrValidation)
	}

	count, err := s.repo.UpdateApplicationStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("%s: %w", op, errs.ErrNotFound)
	}

	s.log.Info("application status updated",
		slog.String("id", id),
		slog.String("status", status))
	return s.repo.ReadApplication(ctx, id)
}

// ListFor возвращает заявки, видимые пользователю: абитуриент видит
// только свои, администратор — все.
func (s *ApplicationService) ListFor(ctx context.Context, authCtx *models.AuthContext) ([]*models.Application, error) {
	if authCtx.Role == models.RoleAdmin {
		return s.repo.ListAllApplications(ctx)
	}
	return s.repo.ListApplicationsByApplicant(ctx, authCtx.UserUID)
}
