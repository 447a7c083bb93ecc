package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pmurala/scholarship-portal/internal/lib/errs"
	"github.com/pmurala/scholarship-portal/internal/models"
)

// CreateScholarship вставляет новую стипендию и возвращает её ID.
func (s *Storage) CreateScholarship(ctx context.Context, sch models.Scholarship) (string, error) {
	const op = "storage.CreateScholarship"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO scholarships (name, amount, deadline, department, level)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		sch.Name, sch.Amount, sch.Deadline, sch.Department, sch.Level).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// UpdateScholarship обновляет данные стипендии по её ID
// и возвращает количество изменённых строк.
func (s *Storage) UpdateScholarship(ctx context.Context, sch models.Scholarship, id string) (int, error) {
	const op = "storage.UpdateScholarship"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE scholarships
			  SET name = $1, amount = $2, deadline = $3, department = $4, level = $5
			  WHERE id = $6`
	result, err := s.DB.ExecContext(ctx, query,
		sch.Name, sch.Amount, sch.Deadline, sch.Department, sch.Level, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ReadScholarship возвращает стипендию по её ID.
func (s *Storage) ReadScholarship(ctx context.Context, id string) (*models.Scholarship, error) {
	const op = "storage.ReadScholarship"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, amount, deadline, department, level, created_at
			  FROM scholarships WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Scholarship
	if err := row.Scan(&result.ID, &result.Name, &result.Amount, &result.Deadline,
		&result.Department, &result.Level, &result.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListScholarships возвращает список стипендий по конъюнктивному фильтру.
// Пустые поля фильтра не ограничивают выборку.
func (s *Storage) ListScholarships(ctx context.Context, filter models.ScholarshipFilter) ([]*models.Scholarship, error) {
	const op = "storage.ListScholarships"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, amount, deadline, department, level, created_at
			  FROM scholarships
			  WHERE ($1 = '' OR department = $1)
			    AND ($2 = '' OR level = $2)
			    AND ($3 = '' OR name ILIKE '%' || $3 || '%')
			  ORDER BY deadline`
	rows, err := s.DB.QueryContext(ctx, query, filter.Department, filter.Level, filter.Name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Scholarship
	for rows.Next() {
		var item models.Scholarship
		if err := rows.Scan(&item.ID, &item.Name, &item.Amount, &item.Deadline,
			&item.Department, &item.Level, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
