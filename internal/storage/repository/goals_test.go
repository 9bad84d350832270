package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/goal-tracker/internal/models"
	"github.com/magabrotheeeer/goal-tracker/internal/storage/repository"
)

var goalColumns = []string{
	"id", "user_uid", "name", "description", "target_date",
	"target_value", "completed", "created_at", "updated_at",
}

func TestCreateGoal(t *testing.T) {
	goal := models.Goal{
		UserUID:     "uid-1",
		Name:        "Read 12 books",
		Description: "One per month",
		TargetDate:  time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		TargetValue: 12,
	}

	t.Run("success returns new id", func(t *testing.T) {
		storage, mockDB := newTestStorage(t)

		mockDB.ExpectQuery(regexp.QuoteMeta(`INSERT INTO goals`)).
			WithArgs(goal.UserUID, goal.Name, goal.Description, goal.TargetDate,
				goal.TargetValue, goal.Completed).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		id, err := storage.CreateGoal(context.Background(), goal)
		require.NoError(t, err)
		assert.Equal(t, 7, id)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		storage, mockDB := newTestStorage(t)

		mockDB.ExpectQuery(regexp.QuoteMeta(`INSERT INTO goals`)).
			WillReturnError(errors.New("connection reset"))

		id, err := storage.CreateGoal(context.Background(), goal)
		assert.Error(t, err)
		assert.Zero(t, id)
	})
}

func TestReadGoal(t *testing.T) {
	now := time.Now()

	t.Run("success", func(t *testing.T) {
		storage, mockDB := newTestStorage(t)

		rows := sqlmock.NewRows(goalColumns).
			AddRow(5, "uid-1", "Read 12 books", "One per month",
				time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), 12.0, false, now, now)
		mockDB.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_uid, name, description`)).
			WithArgs(5, "uid-1").
			WillReturnRows(rows)

		goal, err := storage.ReadGoal(context.Background(), 5, "uid-1")
		require.NoError(t, err)
		assert.Equal(t, 5, goal.ID)
		assert.Equal(t, "Read 12 books", goal.Name)
		assert.Equal(t, 12.0, goal.TargetValue)
	})

	t.Run("foreign goal maps to ErrGoalNotFound", func(t *testing.T) {
		storage, mockDB := newTestStorage(t)

		mockDB.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_uid, name, description`)).
			WithArgs(5, "uid-2").
			WillReturnRows(sqlmock.NewRows(goalColumns))

		goal, err := storage.ReadGoal(context.Background(), 5, "uid-2")
		assert.Nil(t, goal)
		assert.ErrorIs(t, err, repository.ErrGoalNotFound)
	})
}

func TestListGoals(t *testing.T) {
	now := time.Now()

	t.Run("returns user goals", func(t *testing.T) {
		storage, mockDB := newTestStorage(t)

		rows := sqlmock.NewRows(goalColumns).
			AddRow(1, "uid-1", "Read 12 books", "One per month",
				time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), 12.0, false, now, now).
			AddRow(2, "uid-1", "Run a marathon", "Spring race",
				time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), 42.2, true, now, now)
		mockDB.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_uid, name, description`)).
			WithArgs("uid-1", 10, 0).
			WillReturnRows(rows)

		goals, err := storage.ListGoals(context.Background(), "uid-1", 10, 0)
		require.NoError(t, err)
		require.Len(t, goals, 2)
		assert.Equal(t, "Read 12 books", goals[0].Name)
		assert.True(t, goals[1].Completed)
	})

	t.Run("empty result", func(t *testing.T) {
		storage, mockDB := newTestStorage(t)

		mockDB.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_uid, name, description`)).
			WithArgs("uid-9", 10, 0).
			WillReturnRows(sqlmock.NewRows(goalColumns))

		goals, err := storage.ListGoals(context.Background(), "uid-9", 10, 0)
		require.NoError(t, err)
		assert.Empty(t, goals)
	})
}

func TestUpdateGoal(t *testing.T) {
	t.Run("partial update counts affected rows", func(t *testing.T) {
		storage, mockDB := newTestStorage(t)

		completed := true
		upd := models.GoalUpdate{Completed: &completed}

		mockDB.ExpectExec(regexp.QuoteMeta(`UPDATE goals`)).
			WithArgs(nil, nil, nil, nil, true, 5, "uid-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		res, err := storage.UpdateGoal(context.Background(), upd, 5, "uid-1")
		require.NoError(t, err)
		assert.Equal(t, 1, res)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("foreign goal updates nothing", func(t *testing.T) {
		storage, mockDB := newTestStorage(t)

		name := "New name"
		upd := models.GoalUpdate{Name: &name}

		mockDB.ExpectExec(regexp.QuoteMeta(`UPDATE goals`)).
			WithArgs("New name", nil, nil, nil, nil, 5, "uid-2").
			WillReturnResult(sqlmock.NewResult(0, 0))

		res, err := storage.UpdateGoal(context.Background(), upd, 5, "uid-2")
		require.NoError(t, err)
		assert.Zero(t, res)
	})
}

func TestRemoveGoal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		storage, mockDB := newTestStorage(t)

		mockDB.ExpectExec(regexp.QuoteMeta(`DELETE FROM goals WHERE id = $1 AND user_uid = $2`)).
			WithArgs(5, "uid-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		res, err := storage.RemoveGoal(context.Background(), 5, "uid-1")
		require.NoError(t, err)
		assert.Equal(t, 1, res)
	})

	t.Run("foreign goal deletes nothing", func(t *testing.T) {
		storage, mockDB := newTestStorage(t)

		mockDB.ExpectExec(regexp.QuoteMeta(`DELETE FROM goals WHERE id = $1 AND user_uid = $2`)).
			WithArgs(5, "uid-2").
			WillReturnResult(sqlmock.NewResult(0, 0))

		res, err := storage.RemoveGoal(context.Background(), 5, "uid-2")
		require.NoError(t, err)
		assert.Zero(t, res)
	})
}

func TestCountGoals(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		storage, mockDB := newTestStorage(t)

		mockDB.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*), COUNT(*) FILTER (WHERE completed)`)).
			WithArgs("uid-1").
			WillReturnRows(sqlmock.NewRows([]string{"count", "count"}).AddRow(4, 3))

		total, completed, err := storage.CountGoals(context.Background(), "uid-1")
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		assert.Equal(t, 3, completed)
	})

	t.Run("db error", func(t *testing.T) {
		storage, mockDB := newTestStorage(t)

		mockDB.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*), COUNT(*) FILTER (WHERE completed)`)).
			WithArgs("uid-1").
			WillReturnError(errors.New("connection reset"))

		_, _, err := storage.CountGoals(context.Background(), "uid-1")
		assert.Error(t, err)
	})
}
