// Package repository реализует хранилище данных на основе PostgreSQL
// для портала стипендий. Предоставляет методы работы с пользователями,
// стипендиями, заявками и объявлениями.
//
// Ограничения целостности (уникальная почта, уникальная пара
// абитуриент-стипендия) обеспечиваются индексами базы данных, а не
// проверками в памяти: два конкурентных запроса не могут оба пройти
// проверку до записи.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Storage инкапсулирует соединение с базой данных PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'applications'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table applications missing or query error: %w", err)
	}
	return nil
}

// isUniqueViolation сообщает, вызвана ли ошибка нарушением уникального индекса.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
