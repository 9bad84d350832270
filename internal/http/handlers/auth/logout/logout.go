// Package logout реализует HTTP-обработчик выхода из системы.
//
// Токены не отзываются на сервере, поэтому операция всегда успешна:
// клиент сам отвечает за удаление своего токена.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/goal-tracker/internal/http/response"
)

// Handler обрабатывает HTTP-запросы выхода.
type Handler struct {
	log *slog.Logger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{
		log: log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	log.Info("logout request")

	render.JSON(w, r, response.OK("Logout successful"))
}
