// Package update реализует HTTP-обработчик частичного обновления цели.
//
// Handler принимает JSON-запрос с изменяемыми полями, извлекает идентификатор
// пользователя из контекста и ID цели из URL, вызывает бизнес-логику обновления
// и возвращает количество изменённых записей.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/goal-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/goal-tracker/internal/http/response"
	"github.com/magabrotheeeer/goal-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/goal-tracker/internal/models"
	"github.com/magabrotheeeer/goal-tracker/internal/services/goal"
)

// Handler управляет HTTP-запросами на обновление целей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики обновления цели.
type Service interface {
	Update(ctx context.Context, req models.DummyGoalUpdate, id int, userUID string) (int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Обновить цель
// @Description Частично обновляет цель текущего пользователя по ID.
// @Tags Goals
// @Accept  json
// @Produce  json
// @Param id path int true "ID цели"
// @Param request body models.DummyGoalUpdate true "Изменяемые поля"
// @Success 200 {object} response.Response "Успешное обновление"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Цель не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /goals/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.goal.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		log.Error("invalid id format", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	var req models.DummyGoalUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	if req.IsEmpty() {
		log.Error("empty update request")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("no fields to update"))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("Unauthorized"))
		return
	}

	res, err := h.service.Update(r.Context(), req, id, userUID)
	if err != nil {
		if errors.Is(err, goal.ErrInvalidTargetDate) {
			log.Error("invalid target date", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid target date format"))
			return
		}
		log.Error("failed to update goal", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Goal update failed"))
		return
	}
	if res == 0 {
		log.Error("goal not found", slog.Int("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("Goal not found"))
		return
	}

	log.Info("success to update goal", slog.Int("id", id))
	render.JSON(w, r, response.OKWithData("Goal updated successfully", map[string]any{
		"updated_count": res,
	}))
}
