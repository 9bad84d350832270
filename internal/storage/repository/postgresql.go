// Package repository реализует хранилище данных на основе PostgreSQL
// для управления пользователями и целями. Предоставляет методы
// создания, чтения, обновления, удаления и агрегирования записей.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки уровня хранилища, по которым вышестоящие слои различают исход операции.
var (
	// ErrEmailTaken возвращается при нарушении уникальности email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound возвращается, если пользователь не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrGoalNotFound возвращается, если цель не найдена или принадлежит другому пользователю.
	ErrGoalNotFound = errors.New("goal not found")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с пользователями и целями.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL.
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
        WHERE table_name = 'goals'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table goals missing or query error: %w", err)
	}
	return nil
}
