// Package create реализует HTTP-обработчик для создания новых целей пользователя.
//
// Handler принимает JSON-запрос с данными цели, валидирует их, извлекает
// идентификатор пользователя из контекста, вызывает бизнес-логику создания цели
// через сервис и возвращает ID созданной записи в JSON-формате.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/goal-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/goal-tracker/internal/http/response"
	"github.com/magabrotheeeer/goal-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/goal-tracker/internal/models"
	"github.com/magabrotheeeer/goal-tracker/internal/services/goal"
)

// Handler управляет HTTP-запросами на создание новых целей.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для создания целей
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания цели.
type Service interface {
	Create(ctx context.Context, userUID string, req models.DummyGoal) (int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать новую цель
// @Description Создает новую цель для текущего пользователя. Возвращает ID созданной записи.
// @Tags Goals
// @Accept  json
// @Produce  json
// @Param request body models.DummyGoal true "Данные новой цели"
// @Success 201 {object} response.Response "Успешное создание цели"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании цели"
// @Security BearerAuth
// @Router /goals [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.goal.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyGoal
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("Unauthorized"))
		return
	}

	id, err := h.service.Create(r.Context(), userUID, req)
	if err != nil {
		if errors.Is(err, goal.ErrInvalidTargetDate) {
			log.Error("invalid target date", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid target date format"))
			return
		}
		log.Error("failed to create goal", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Goal creation failed"))
		return
	}

	log.Info("success to create goal", slog.Int("id", id))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData("Goal created successfully", map[string]any{
		"id": id,
	}))
}
