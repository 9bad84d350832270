// Package models содержит доменные структуры, описывающие цель пользователя,
// а также вспомогательные типы для работы с данными из JSON-запросов.
package models

import "time"

// Goal представляет собой основную модель цели,
// используемую в бизнес-логике и хранилище.
type Goal struct {
	ID          int       `json:"id"`           // Идентификатор цели
	UserUID     string    `json:"-"`            // Владелец цели
	Name        string    `json:"name"`         // Название цели
	Description string    `json:"description"`  // Описание цели
	TargetDate  time.Time `json:"target_date"`  // Целевая дата
	TargetValue float64   `json:"target_value"` // Целевое значение
	Completed   bool      `json:"completed"`    // Признак завершённости
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DummyGoal используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Goal.
// Дата приходит в виде строки, чтобы её можно было валидировать и парсить вручную.
type DummyGoal struct {
	Name        string   `json:"name" validate:"required"`         // Название цели
	Description string   `json:"description" validate:"required"`  // Описание цели
	TargetDate  string   `json:"target_date" validate:"required"`  // Целевая дата строкой
	TargetValue *float64 `json:"target_value" validate:"required"` // Целевое значение
}

// DummyGoalUpdate описывает частичное обновление цели: заполненные поля
// обновляются, nil-поля остаются без изменений. Хотя бы одно поле должно
// быть задано.
type DummyGoalUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	TargetDate  *string  `json:"target_date,omitempty"`
	TargetValue *float64 `json:"target_value,omitempty"`
	Completed   *bool    `json:"completed,omitempty"`
}

// GoalUpdate — уже провалидированное частичное обновление цели,
// передаваемое из бизнес-логики в хранилище. Дата здесь уже разобрана.
type GoalUpdate struct {
	Name        *string
	Description *string
	TargetDate  *time.Time
	TargetValue *float64
	Completed   *bool
}

// IsEmpty сообщает, что в запросе на обновление не задано ни одно поле.
func (u DummyGoalUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.TargetDate == nil &&
		u.TargetValue == nil && u.Completed == nil
}

// GoalSummary содержит агрегированную статистику по целям пользователя
// для экрана дашборда.
type GoalSummary struct {
	TotalGoals         int `json:"totalGoals"`
	CompletedGoals     int `json:"completedGoals"`
	ProgressPercentage int `json:"progressPercentage"`
}
