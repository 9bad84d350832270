// Package goal содержит бизнес-логику для управления целями и кешированием.
package goal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/magabrotheeeer/goal-tracker/internal/lib/dates"
	"github.com/magabrotheeeer/goal-tracker/internal/models"
)

// ErrInvalidTargetDate возвращается, если целевую дату не удалось разобрать.
var ErrInvalidTargetDate = errors.New("invalid target date")

// GoalRepository определяет методы для работы с целями в хранилище.
type GoalRepository interface {
	// CreateGoal добавляет новую цель и возвращает её ID.
	CreateGoal(ctx context.Context, goal models.Goal) (int, error)
	// ReadGoal возвращает цель пользователя по ID.
	ReadGoal(ctx context.Context, id int, userUID string) (*models.Goal, error)
	// ListGoals возвращает список целей пользователя с пагинацией.
	ListGoals(ctx context.Context, userUID string, limit, offset int) ([]*models.Goal, error)
	// UpdateGoal частично обновляет цель и возвращает количество изменённых строк.
	UpdateGoal(ctx context.Context, upd models.GoalUpdate, id int, userUID string) (int, error)
	// RemoveGoal удаляет цель и возвращает количество удалённых строк.
	RemoveGoal(ctx context.Context, id int, userUID string) (int, error)
	// CountGoals возвращает общее и завершённое число целей пользователя.
	CountGoals(ctx context.Context, userUID string) (total, completed int, err error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// Service реализует бизнес-логику работы с целями, включая кеширование
// сводки для дашборда.
type Service struct {
	repo  GoalRepository
	cache Cache
	log   *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo GoalRepository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func summaryKey(userUID string) string {
	return fmt.Sprintf("goals:summary:%s", userUID)
}

// Create создает новую цель пользователя и возвращает её ID.
func (s *Service) Create(ctx context.Context, userUID string, req models.DummyGoal) (int, error) {
	targetDate, err := dates.Normalize(req.TargetDate)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTargetDate, err)
	}

	goal := models.Goal{
		UserUID:     userUID,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		TargetDate:  targetDate,
		TargetValue: *req.TargetValue,
	}

	id, err := s.repo.CreateGoal(ctx, goal)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new goal", slog.Int("id", id))

	s.invalidateSummary(userUID)
	return id, nil
}

// Read возвращает цель пользователя по ID.
func (s *Service) Read(ctx context.Context, id int, userUID string) (*models.Goal, error) {
	return s.repo.ReadGoal(ctx, id, userUID)
}

// List возвращает список целей пользователя.
func (s *Service) List(ctx context.Context, userUID string, limit, offset int) ([]*models.Goal, error) {
	return s.repo.ListGoals(ctx, userUID, limit, offset)
}

// Update частично обновляет цель пользователя и возвращает количество
// изменённых строк (0 — цель не найдена или принадлежит другому пользователю).
func (s *Service) Update(ctx context.Context, req models.DummyGoalUpdate, id int, userUID string) (int, error) {
	upd := models.GoalUpdate{
		TargetValue: req.TargetValue,
		Completed:   req.Completed,
	}
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		upd.Name = &trimmed
	}
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		upd.Description = &trimmed
	}
	if req.TargetDate != nil {
		targetDate, err := dates.Normalize(*req.TargetDate)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidTargetDate, err)
		}
		upd.TargetDate = &targetDate
	}

	res, err := s.repo.UpdateGoal(ctx, upd, id, userUID)
	if err != nil {
		return 0, err
	}
	s.log.Info("updated goal in storage", slog.Int("id", id))

	s.invalidateSummary(userUID)
	return res, nil
}

// Remove удаляет цель пользователя и возвращает количество удалённых строк.
func (s *Service) Remove(ctx context.Context, id int, userUID string) (int, error) {
	count, err := s.repo.RemoveGoal(ctx, id, userUID)
	if err != nil {
		return 0, err
	}

	s.invalidateSummary(userUID)
	return count, nil
}

// Summary возвращает сводку по целям пользователя для дашборда,
// используя кеш или хранилище. При пустом списке целей прогресс равен нулю.
func (s *Service) Summary(ctx context.Context, userUID string) (*models.GoalSummary, error) {
	var result *models.GoalSummary
	cacheKey := summaryKey(userUID)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read summary from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found && err == nil {
		return result, nil
	}

	total, completed, err := s.repo.CountGoals(ctx, userUID)
	if err != nil {
		return nil, err
	}

	progress := 0
	if total > 0 {
		progress = int(math.Round(float64(completed) / float64(total) * 100))
	}
	result = &models.GoalSummary{
		TotalGoals:         total,
		CompletedGoals:     completed,
		ProgressPercentage: progress,
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache summary", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// invalidateSummary сбрасывает кешированную сводку после любой записи.
func (s *Service) invalidateSummary(userUID string) {
	cacheKey := summaryKey(userUID)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate summary cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
}
