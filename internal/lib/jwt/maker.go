// Package jwt реализует выпуск и проверку JWT токенов с идентификатором пользователя.
//
// Maker определяет интерфейс для создания и проверки токенов.
// MakerImpl — конкретная реализация на секретном ключе HS256 и сроке жизни токена.
package jwt

import (
	"errors"
	"time"
)

// ErrNoSecret возвращается, если секретный ключ не задан.
// Выпуск токена без ключа — ошибка конфигурации, проверка без ключа
// всегда завершается отказом (fail-closed).
var ErrNoSecret = errors.New("jwt secret key is not configured")

// Maker описывает интерфейс для выпуска и проверки JWT токенов.
type Maker interface {
	// GenerateToken выпускает подписанный токен для пользователя с данным UID.
	GenerateToken(userUID string) (string, error)
	// ParseToken проверяет подпись и срок жизни токена и возвращает его claims.
	ParseToken(tokenStr string) (*Claims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
