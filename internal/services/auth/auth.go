// Package auth содержит бизнес-логику регистрации, входа и проверки токенов.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/goal-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/goal-tracker/internal/lib/password"
	"github.com/magabrotheeeer/goal-tracker/internal/models"
	"github.com/magabrotheeeer/goal-tracker/internal/storage/repository"
)

// Ошибки, по которым обработчики выбирают HTTP-статус ответа.
var (
	// ErrEmailTaken возвращается при попытке регистрации на занятый email.
	ErrEmailTaken = repository.ErrEmailTaken
	// ErrInvalidCredentials возвращается при неверных учетных данных.
	// Отсутствующий пользователь и неверный пароль намеренно неразличимы.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя.
	CreateUser(ctx context.Context, user models.User) error

	// GetUserByEmail возвращает пользователя по email (без учета регистра)
	// или repository.ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Result — результат успешной регистрации или входа.
// Хэш пароля наружу не отдается.
type Result struct {
	UID   string
	Name  string
	Email string
	Token string
}

// Service отвечает за регистрацию, авторизацию и валидацию JWT.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// New создает новый экземпляр Service.
func New(users UserRepository, jwtMaker jwt.Maker) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля и выпускает токен.
//
// Email приводится к нижнему регистру до проверки занятости, поэтому
// коллизии вида A@X.com / a@x.com отклоняются. Проверка занятости и запись
// не атомарны: гонку конкурентных регистраций разрешает уникальный индекс
// в базе, нарушение которого также транслируется в ErrEmailTaken.
func (s *Service) Register(ctx context.Context, email, rawPassword, name string) (*Result, error) {
	const op = "auth.Register"
	email = strings.ToLower(strings.TrimSpace(email))

	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		UID:          uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.jwtMaker.GenerateToken(user.UID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Result{
		UID:   user.UID,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	}, nil
}

// Login проверяет пароль пользователя и выпускает JWT.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (*Result, error) {
	const op = "auth.Login"
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, err := s.jwtMaker.GenerateToken(user.UID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Result{
		UID:   user.UID,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	}, nil
}

// ValidateToken проверяет JWT и возвращает UID пользователя.
func (s *Service) ValidateToken(_ context.Context, token string) (string, error) {
	const op = "auth.ValidateToken"
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return claims.UserUID, nil
}
