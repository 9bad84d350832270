package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/goal-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/goal-tracker/internal/http/response"
	"github.com/magabrotheeeer/goal-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/goal-tracker/internal/models"
)

// Handler обрабатывает HTTP-запросы на получение списка целей пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики получения списка целей.
type Service interface {
	List(ctx context.Context, userUID string, limit, offset int) ([]*models.Goal, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.goal.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limitStr := r.URL.Query().Get("limit")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 10
	}

	offsetStr := r.URL.Query().Get("offset")
	offset, err := strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		offset = 0
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("Unauthorized"))
		return
	}

	res, err := h.service.List(r.Context(), userUID, limit, offset)
	if err != nil {
		log.Error("failed to list goals", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Fetching user goals failed"))
		return
	}

	log.Info("list goals", "count", len(res))
	render.JSON(w, r, response.OKWithData("User goals fetched successfully", map[string]any{
		"count": len(res),
		"goals": res,
	}))
}
