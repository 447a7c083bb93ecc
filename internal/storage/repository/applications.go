package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pmurala/scholarship-portal/internal/lib/errs"
	"github.com/pmurala/scholarship-portal/internal/models"
)

// CreateApplication вставляет новую заявку со статусом Pending и возвращает её ID.
// Повторная заявка той же пары (абитуриент, стипендия) даёт
// errs.ErrDuplicateApplication: уникальность обеспечивает составной индекс,
// а не проверка в памяти, поэтому конкурентные вставки безопасны.
func (s *Storage) CreateApplication(ctx context.Context, app models.Application) (string, error) {
	const op = "storage.CreateApplication"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO applications (applicant_uid, scholarship_id, course, institute, bank_account, status)
			  VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		app.ApplicantUID, app.ScholarshipID, app.Course, app.Institute,
		app.BankAccount, models.StatusPending).Scan(&newID)
	if err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("%s: %w", op, errs.ErrDuplicateApplication)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ApplicationExists сообщает, подавал ли абитуриент заявку на стипендию.
// Это быстрая проверка для детерминированного порядка ошибок; гонку
// конкурентных вставок всё равно закрывает уникальный индекс.
func (s *Storage) ApplicationExists(ctx context.Context, applicantUID, scholarshipID string) (bool, error) {
	const op = "storage.ApplicationExists"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT EXISTS (
			      SELECT 1 FROM applications
			      WHERE applicant_uid = $1 AND scholarship_id = $2
			  )`
	var exists bool
	if err := s.DB.QueryRowContext(ctx, query, applicantUID, scholarshipID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// ReadApplication возвращает заявку по её ID.
func (s *Storage) ReadApplication(ctx context.Context, id string) (*models.Application, error) {
	const op = "storage.ReadApplication"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT a.id, a.applicant_uid, a.scholarship_id, s.name, u.email,
			      a.course, a.institute, COALESCE(a.bank_account, ''), a.status,
			      a.created_at, a.updated_at
			  FROM applications a
			  JOIN scholarships s ON s.id = a.scholarship_id
			  JOIN users u ON u.uid = a.applicant_uid
			  WHERE a.id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Application
	if err := row.Scan(&result.ID, &result.ApplicantUID, &result.ScholarshipID,
		&result.ScholarshipName, &result.ApplicantEmail, &result.Course, &result.Institute,
		&result.BankAccount, &result.Status, &result.CreatedAt, &result.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// UpdateApplicationStatus меняет статус заявки и возвращает количество
// изменённых строк. Допустимость статуса проверяет сервисный слой.
func (s *Storage) UpdateApplicationStatus(ctx context.Context, id, status string) (int, error) {
	const op = "storage.UpdateApplicationStatus"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE applications
			  SET status = $1, updated_at = now()
			  WHERE id = $2`
	result, err := s.DB.ExecContext(ctx, query, status, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListApplicationsByApplicant возвращает заявки одного абитуриента.
func (s *Storage) ListApplicationsByApplicant(ctx context.Context, applicantUID string) ([]*models.Application, error) {
	const op = "storage.ListApplicationsByApplicant"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT a.id, a.applicant_uid, a.scholarship_id, s.name, u.email,
			      a.course, a.institute, COALESCE(a.bank_account, ''), a.status,
			      a.created_at, a.updated_at
			  FROM applications a
			  JOIN scholarships s ON s.id = a.scholarship_id
			  JOIN users u ON u.uid = a.applicant_uid
			  WHERE a.applicant_uid = $1
			  ORDER BY a.created_at`
	return s.listApplications(ctx, op, query, applicantUID)
}

// ListAllApplications возвращает все заявки (для администратора).
func (s *Storage) ListAllApplications(ctx context.Context) ([]*models.Application, error) {
	const op = "storage.ListAllApplications"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT a.id, a.applicant_uid, a.scholarship_id, s.name, u.email,
			      a.course, a.institute, COALESCE(a.bank_account, ''), a.status,
			      a.created_at, a.updated_at
			  FROM applications a
			  JOIN scholarships s ON s.id = a.scholarship_id
			  JOIN users u ON u.uid = a.applicant_uid
			  ORDER BY a.created_at`
	return s.listApplications(ctx, op, query)
}

func (s *Storage) listApplications(ctx context.Context, op, query string, args ...any) ([]*models.Application, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Application
	for rows.Next() {
		var item models.Application
		if err := rows.Scan(&item.ID, &item.ApplicantUID, &item.ScholarshipID,
			&item.ScholarshipName, &item.ApplicantEmail, &item.Course, &item.Institute,
			&item.BankAccount, &item.Status, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
