// Package errs определяет сентинельные ошибки доменного уровня.
// Сервисы возвращают их (обёрнутыми через %w), а HTTP-обработчики
// сопоставляют с кодами ответов через errors.Is.
package errs

import "errors"

var (
	// ErrValidation — входные данные отсутствуют или некорректны.
	ErrValidation = errors.New("validation error")

	// ErrNotFound — запрошенная сущность не существует.
	ErrNotFound = errors.New("not found")

	// ErrUserExists — почта уже зарегистрирована.
	ErrUserExists = errors.New("email already registered")

	// ErrDuplicateApplication — заявка на эту стипендию уже подана.
	ErrDuplicateApplication = errors.New("application already exists")

	// ErrInvalidCredentials — пароль не совпал с хэшем.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenExpired — срок действия токена истёк.
	ErrTokenExpired = errors.New("token expired")

	// ErrInvalidToken — токен не прошёл проверку подписи или формата.
	ErrInvalidToken = errors.New("invalid token")

	// ErrForbidden — роль пользователя не даёт права на операцию.
	ErrForbidden = errors.New("forbidden")

	// ErrScholarshipExpired — дедлайн стипендии уже прошёл.
	ErrScholarshipExpired = errors.New("scholarship deadline has passed")
)
