package remove

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/goal-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/goal-tracker/internal/http/response"
	"github.com/magabrotheeeer/goal-tracker/internal/lib/sl"
)

// Handler обрабатывает HTTP-запросы на удаление целей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления цели.
type Service interface {
	Remove(ctx context.Context, id int, userUID string) (int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.goal.remove"

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

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("Unauthorized"))
		return
	}

	res, err := h.service.Remove(r.Context(), id, userUID)
	if err != nil {
		log.Error("failed to delete goal", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Goal deletion failed"))
		return
	}
	if res == 0 {
		log.Error("goal not found", slog.Int("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("Goal not found"))
		return
	}

	log.Info("success to delete goal", slog.Int("deleted_count", res))
	render.JSON(w, r, response.OKWithData("Goal deleted successfully", map[string]any{
		"deleted_count": res,
	}))
}
