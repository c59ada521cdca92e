package getCart

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"yogabooker/internal/cart"
	"yogabooker/internal/http-server/middleware/session"
	"yogabooker/internal/lib/api/response"
	"yogabooker/internal/models"
)

type CartResponse struct {
	response.Response
	Items []models.CartItem `json:"items"`
	Count int               `json:"count"`
	Max   int               `json:"max"`
}

func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.cart.getCart.New"

		log = log.With(slog.String("op", op))

		sessionCart := session.CartFromContext(r.Context())
		if sessionCart == nil {
			log.Error("no session cart in request context")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("no session"))
			return
		}

		items := sessionCart.Items()

		log.Info("cart retrieved", slog.Int("count", len(items)))

		render.JSON(w, r, CartResponse{
			Response: response.OK(),
			Items:    items,
			Count:    len(items),
			Max:      cart.MaxItems,
		})
	}
}
