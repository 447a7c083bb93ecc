package repository

import (
	"context"
	"fmt"

	"github.com/pmurala/scholarship-portal/internal/models"
)

// CreateAnnouncement вставляет новое объявление и возвращает его ID.
func (s *Storage) CreateAnnouncement(ctx context.Context, a models.Announcement) (string, error) {
	const op = "storage.CreateAnnouncement"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO announcements (title, date, body)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	var newID string
	if err := s.DB.QueryRowContext(ctx, query, a.Title, a.Date, a.Body).Scan(&newID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListAnnouncements возвращает все объявления, новые первыми.
func (s *Storage) ListAnnouncements(ctx context.Context) ([]*models.Announcement, error) {
	const op = "storage.ListAnnouncements"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, date, body, created_at
			  FROM announcements
			  ORDER BY date DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Announcement
	for rows.Next() {
		var item models.Announcement
		if err := rows.Scan(&item.ID, &item.Title, &item.Date, &item.Body, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
