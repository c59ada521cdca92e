package removeFromCart

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"yogabooker/internal/http-server/middleware/session"
	"yogabooker/internal/lib/api/response"
	"yogabooker/internal/lib/logger/sl"
)

type RemoveResponse struct {
	response.Response
	Count int `json:"count"`
}

// New removes one item from the session cart. Removing an id that is not in
// the cart succeeds as a no-op.
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.cart.removeFromCart.New"

		log = log.With(slog.String("op", op))

		sessionCart := session.CartFromContext(r.Context())
		if sessionCart == nil {
			log.Error("no session cart in request context")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("no session"))
			return
		}

		instanceIDStr := chi.URLParam(r, "id")
		if instanceIDStr == "" {
			log.Error("instance id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("instance id is required"))
			return
		}

		instanceID, err := strconv.Atoi(instanceIDStr)
		if err != nil {
			log.Error("invalid instance id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid instance id format"))
			return
		}

		sessionCart.Remove(instanceID)

		log.Info("item removed from cart",
			slog.Int("instance_id", instanceID),
			slog.Int("count", sessionCart.Len()))

		render.JSON(w, r, RemoveResponse{
			Response: response.OK(),
			Count:    sessionCart.Len(),
		})
	}
}
