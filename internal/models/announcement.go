package models

import "time"

// Announcement — объявление портала. Чистые данные без жизненного цикла:
// создаётся администратором, читается всеми.
type Announcement struct {
	ID        string    // Уникальный идентификатор
	Title     string    // Заголовок
	Date      time.Time // Дата объявления
	Body      string    // Текст объявления
	CreatedAt time.Time // Дата создания записи
}

// DummyAnnouncement используется для приёма данных из JSON-запроса.
type DummyAnnouncement struct {
	Title string `json:"title" validate:"required"`                    // Заголовок
	Date  string `json:"date" validate:"required,datetime=2006-01-02"` // Дата в формате 2006-01-02
	Body  string `json:"body" validate:"required"`                     // Текст
}
