// Package jwt реализует выпуск и разбор JWT-токенов с пользовательскими
// claim-полями портала (идентификатор, почта, имя, роль).
//
// Maker определяет интерфейс выпуска и проверки токенов.
// MakerImpl — конкретная реализация на секретном ключе HS256 со сроком жизни.
package jwt

import (
	"time"

	"github.com/pmurala/scholarship-portal/internal/models"
)

// Maker описывает интерфейс выпуска и разбора токенов.
type Maker interface {
	// GenerateToken выпускает токен для пользователя с его ролью.
	GenerateToken(user *models.User) (string, error)
	// ParseToken проверяет подпись и срок действия, возвращает claims.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker на основе секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов
	tokenTTL  time.Duration // Время жизни токена
}

// NewJWTMaker создаёт новый экземпляр MakerImpl с ключом и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
