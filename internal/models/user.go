// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и дату создания.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
// Поле PasswordHash всегда содержит bcrypt-хэш, никогда — пароль в открытом виде.
type User struct {
	UID          string    // Уникальный идентификатор пользователя
	Name         string    // Имя пользователя
	Email        string    // Электронная почта (уникальная, хранится в нижнем регистре)
	PasswordHash string    // Хэш пароля пользователя
	CreatedAt    time.Time // Дата регистрации
}
