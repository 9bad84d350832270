package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/goal-tracker/internal/models"
)

// CreateGoal вставляет новую запись цели и возвращает её ID.
func (s *Storage) CreateGoal(ctx context.Context, goal models.Goal) (int, error) {
	const op = "storage.CreateGoal"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO goals (user_uid, name, description, target_date, target_value, completed)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		goal.UserUID, goal.Name, goal.Description, goal.TargetDate,
		goal.TargetValue, goal.Completed).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadGoal возвращает данные цели по её ID в пределах целей пользователя.
func (s *Storage) ReadGoal(ctx context.Context, id int, userUID string) (*models.Goal, error) {
	const op = "storage.ReadGoal"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, name, description, target_date, target_value,
			      completed, created_at, updated_at
			  FROM goals
			  WHERE id = $1 AND user_uid = $2`
	row := s.DB.QueryRowContext(ctx, query, id, userUID)

	var result models.Goal
	if err := row.Scan(&result.ID, &result.UserUID, &result.Name, &result.Description,
		&result.TargetDate, &result.TargetValue, &result.Completed,
		&result.CreatedAt, &result.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrGoalNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListGoals возвращает список всех целей пользователя с пагинацией.
func (s *Storage) ListGoals(ctx context.Context, userUID string, limit, offset int) ([]*models.Goal, error) {
	const op = "storage.ListGoals"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, name, description, target_date, target_value,
			      completed, created_at, updated_at
			  FROM goals
			  WHERE user_uid = $1
			  ORDER BY id
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, userUID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Goal
	for rows.Next() {
		var item models.Goal
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Name, &item.Description,
			&item.TargetDate, &item.TargetValue, &item.Completed,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateGoal частично обновляет данные цели по её ID и возвращает количество
// изменённых строк. Nil-поля не меняются. Чужие цели не видны: запрос
// ограничен user_uid.
func (s *Storage) UpdateGoal(ctx context.Context, upd models.GoalUpdate, id int, userUID string) (int, error) {
	const op = "storage.UpdateGoal"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE goals
			  SET name = COALESCE($1, name),
			      description = COALESCE($2, description),
			      target_date = COALESCE($3, target_date),
			      target_value = COALESCE($4, target_value),
			      completed = COALESCE($5, completed),
			      updated_at = NOW()
			  WHERE id = $6 AND user_uid = $7`
	result, err := s.DB.ExecContext(ctx, query,
		upd.Name, upd.Description, upd.TargetDate, upd.TargetValue, upd.Completed,
		id, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveGoal удаляет цель по ID в пределах целей пользователя и возвращает
// количество удалённых строк.
func (s *Storage) RemoveGoal(ctx context.Context, id int, userUID string) (int, error) {
	const op = "storage.RemoveGoal"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM goals WHERE id = $1 AND user_uid = $2`
	result, err := s.DB.ExecContext(ctx, query, id, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// CountGoals возвращает общее число целей пользователя и число завершённых.
func (s *Storage) CountGoals(ctx context.Context, userUID string) (total, completed int, err error) {
	const op = "storage.CountGoals"
	select {
	case <-ctx.Done():
		return 0, 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE completed)
			  FROM goals
			  WHERE user_uid = $1`
	if err = s.DB.QueryRowContext(ctx, query, userUID).Scan(&total, &completed); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, completed, nil
}
