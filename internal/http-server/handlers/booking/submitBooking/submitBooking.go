package submitBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"yogabooker/internal/booking"
	"yogabooker/internal/cart"
	"yogabooker/internal/http-server/middleware/session"
	"yogabooker/internal/lib/api/response"
	"yogabooker/internal/lib/logger/sl"
)

type SubmitRequest struct {
	Email string `json:"email" validate:"required"`
}

type SubmitResponse struct {
	response.Response
	InstanceIDs []int `json:"instance_ids,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingSubmitter
type BookingSubmitter interface {
	Submit(ctx context.Context, c *cart.Cart, email string) ([]int, error)
}

// New runs the booking submission workflow for the session cart. Validation
// failures and an unreachable or failing store each map to a distinct
// status; the cart survives every failure so the user can retry.
func New(log *slog.Logger, submitter BookingSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.submitBooking.New"

		log = log.With(slog.String("op", op))

		sessionCart := session.CartFromContext(r.Context())
		if sessionCart == nil {
			log.Error("no session cart in request context")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("no session"))
			return
		}

		var req SubmitRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		instanceIDs, err := submitter.Submit(r.Context(), sessionCart, req.Email)
		if err != nil {
			log.Error("failed to submit booking", sl.Err(err))

			switch {
			case errors.Is(err, booking.ErrEmailRequired):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("email is required"))
			case errors.Is(err, booking.ErrEmailInvalid):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("email is invalid"))
			case errors.Is(err, booking.ErrCartEmpty):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("cart is empty"))
			case errors.Is(err, booking.ErrUnreachable):
				render.Status(r, http.StatusServiceUnavailable)
				render.JSON(w, r, response.Error("remote store is unreachable"))
			default:
				render.Status(r, http.StatusBadGateway)
				render.JSON(w, r, response.Error("failed to submit booking"))
			}

			return
		}

		log.Info("booking submitted",
			slog.String("email", req.Email),
			slog.Int("items", len(instanceIDs)))

		responseOK(w, r, instanceIDs)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, instanceIDs []int) {
	render.JSON(w, r, SubmitResponse{
		Response:    response.OK(),
		InstanceIDs: instanceIDs,
	})
}
