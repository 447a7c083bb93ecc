// Package models содержит доменные структуры портала стипендий:
// учётные записи, стипендии, заявки и объявления.
package models

import "time"

// Роли учётных записей. Роль фиксируется при регистрации и не меняется.
const (
	RoleApplicant = "applicant"
	RoleAdmin     = "admin"
)

// IsValidRole сообщает, входит ли роль в множество допустимых.
func IsValidRole(role string) bool {
	return role == RoleApplicant || role == RoleAdmin
}

// User представляет зарегистрированного пользователя портала.
// Пароль хранится только в виде bcrypt-хэша.
type User struct {
	UID          string    // Уникальный идентификатор пользователя
	Name         string    // Отображаемое имя
	Email        string    // Электронная почта (уникальная)
	PasswordHash string    // Хэш пароля
	Role         string    // Роль: applicant или admin
	CreatedAt    time.Time // Дата регистрации
}

// UserSummary — представление пользователя для клиента.
// Хэш пароля никогда не попадает в это представление.
type UserSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthContext описывает аутентифицированного пользователя запроса,
// восстановленного из валидного токена.
type AuthContext struct {
	UserUID string
	Email   string
	Name    string
	Role    string
}
