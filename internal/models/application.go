package models

import "time"

// Статусы заявки. Начальный статус всегда StatusPending,
// смена статуса доступна только администратору.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// IsValidStatus сообщает, входит ли статус в множество допустимых.
func IsValidStatus(status string) bool {
	return status == StatusPending || status == StatusApproved || status == StatusRejected
}

// Application представляет заявку абитуриента на стипендию.
// Пара (ApplicantUID, ScholarshipID) уникальна: повторная подача
// на ту же стипендию отклоняется.
type Application struct {
	ID              string    // Уникальный идентификатор заявки
	ApplicantUID    string    // Идентификатор абитуриента
	ScholarshipID   string    // Идентификатор стипендии
	ScholarshipName string    // Название стипендии (заполняется при чтении)
	ApplicantEmail  string    // Почта абитуриента (заполняется при чтении)
	Course          string    // Направление обучения
	Institute       string    // Учебное заведение
	BankAccount     string    // Банковские реквизиты (необязательные)
	Status          string    // Pending, Approved или Rejected
	CreatedAt       time.Time // Дата подачи
	UpdatedAt       time.Time // Дата последнего изменения статуса
}

// DummyApplication используется для приёма данных из JSON-запроса
// на подачу заявки. Course и Institute проверяет сервис, а не валидатор:
// порядок ошибок фиксирован — существование стипендии, дедлайн,
// повторная подача и только затем полнота полей.
type DummyApplication struct {
	ScholarshipID string `json:"scholarship_id" validate:"required,uuid"` // Идентификатор стипендии
	Course        string `json:"course"`                                  // Направление обучения
	Institute     string `json:"institute"`                               // Учебное заведение
	BankAccount   string `json:"bank_account"`                            // Реквизиты (опционально)
}
