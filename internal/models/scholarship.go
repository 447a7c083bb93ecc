package models

import "time"

// Scholarship представляет собой объявленную стипендию.
// Статус "открыта/истекла" никогда не хранится — он всегда выводится
// из сравнения дедлайна с текущей датой.
type Scholarship struct {
	ID         string    // Уникальный идентификатор
	Name       string    // Название стипендии
	Amount     float64   // Размер выплаты, строго больше нуля
	Deadline   time.Time // Дедлайн подачи заявок
	Department string    // Факультет
	Level      string    // Уровень обучения
	CreatedAt  time.Time // Дата создания записи
}

// DaysLeft возвращает число полных дней до дедлайна относительно now.
// Отрицательное значение означает, что дедлайн прошёл.
func (s *Scholarship) DaysLeft(now time.Time) int {
	deadline := s.Deadline.UTC().Truncate(24 * time.Hour)
	today := now.UTC().Truncate(24 * time.Hour)
	return int(deadline.Sub(today).Hours() / 24)
}

// Expired сообщает, прошёл ли дедлайн стипендии на момент now.
func (s *Scholarship) Expired(now time.Time) bool {
	return s.DaysLeft(now) < 0
}

// DummyScholarship используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Scholarship.
// Дедлайн приходит строкой в формате 2006-01-02.
type DummyScholarship struct {
	Name       string  `json:"name" validate:"required"`                // Название
	Amount     float64 `json:"amount" validate:"required,gt=0"`         // Размер выплаты (>0)
	Deadline   string  `json:"deadline" validate:"required,datetime=2006-01-02"` // Дедлайн
	Department string  `json:"department" validate:"required"`          // Факультет
	Level      string  `json:"level" validate:"required"`               // Уровень обучения
}

// ScholarshipFilter задаёт конъюнктивный фильтр листинга стипендий.
// Пустое поле означает отсутствие ограничения.
type ScholarshipFilter struct {
	Department string // Точное совпадение факультета
	Level      string // Точное совпадение уровня
	Name       string // Подстрока названия, без учёта регистра
}
