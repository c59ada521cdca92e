package clearCart

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"yogabooker/internal/http-server/middleware/session"
	"yogabooker/internal/lib/api/response"
)

type ClearResponse struct {
	response.Response
}

func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.cart.clearCart.New"

		log = log.With(slog.String("op", op))

		sessionCart := session.CartFromContext(r.Context())
		if sessionCart == nil {
			log.Error("no session cart in request context")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("no session"))
			return
		}

		sessionCart.Clear()

		log.Info("cart cleared")

		render.JSON(w, r, ClearResponse{Response: response.OK()})
	}
}
