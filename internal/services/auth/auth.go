// Package services содержит логику бизнес-уровня для работы с учётными
// записями и аутентификацией.
package services

import (
	"context"
	"fmt"

	"github.com/pmurala/scholarship-portal/internal/lib/errs"
	"github.com/pmurala/scholarship-portal/internal/lib/jwt"
	"github.com/pmurala/scholarship-portal/internal/lib/password"
	"github.com/pmurala/scholarship-portal/internal/models"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает пользователя по почте или errs.ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService отвечает за регистрацию, вход и проверку JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля.
// Сырой пароль нигде не сохраняется и не логируется.
// Занятая почта даёт errs.ErrUserExists (из уникального индекса хранилища).
func (s *AuthService) Register(ctx context.Context, name, email, rawPassword, role string) (string, error) {
	const op = "services.auth.Register"
	if !models.IsValidRole(role) {
		return "", fmt.Errorf("%s: %w", op, errs.ErrValidation)
	}
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		Role:         role,
	}
	return s.users.RegisterUser(ctx, user)
}

// Login проверяет пароль пользователя и выпускает JWT со сроком действия
// из конфигурации. Неизвестная почта даёт errs.ErrNotFound, несовпавший
// пароль — errs.ErrInvalidCredentials. Возвращаемое представление
// пользователя не содержит хэша пароля.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, *models.UserSummary, error) {
	const op = "services.auth.Login"
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, errs.ErrInvalidCredentials)
	}
	token, err := s.jwtMaker.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	summary := &models.UserSummary{
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
	return token, summary, nil
}

// ValidateToken проверяет JWT и возвращает контекст аутентифицированного
// пользователя. Роль берётся из токена: смена роли после выпуска вступает
// в силу только после повторного входа.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*models.AuthContext, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return &models.AuthContext{
		UserUID: claims.UserUID,
		Email:   claims.Email,
		Name:    claims.Name,
		Role:    claims.Role,
	}, nil
}
