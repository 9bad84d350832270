// Package summary реализует HTTP-обработчик сводки по целям пользователя
// для экрана дашборда.
package summary

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/goal-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/goal-tracker/internal/http/response"
	"github.com/magabrotheeeer/goal-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/goal-tracker/internal/models"
)

// Handler обрабатывает HTTP-запросы на получение сводки по целям.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики подсчёта сводки.
type Service interface {
	Summary(ctx context.Context, userUID string) (*models.GoalSummary, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Сводка по целям
// @Description Возвращает общее число целей, число завершённых и процент прогресса.
// @Tags Goals
// @Produce  json
// @Success 200 {object} models.GoalSummary "Сводка по целям"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /goals/summary [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.goal.summary"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("Unauthorized"))
		return
	}

	res, err := h.service.Summary(r.Context(), userUID)
	if err != nil {
		log.Error("failed to calculate summary", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Fetching goal summary failed"))
		return
	}

	log.Info("goal summary calculated",
		slog.Int("total", res.TotalGoals), slog.Int("completed", res.CompletedGoals))
	render.JSON(w, r, res)
}
