package getBookingHistory

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"yogabooker/internal/lib/api/response"
	"yogabooker/internal/models"
)

type HistoryResponse struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingLister
type BookingLister interface {
	ListBookingsByEmail(ctx context.Context, email string) []models.Booking
}

// New returns the booking history for the "email" query parameter. History
// is best-effort display data: store failures surface as an empty list.
func New(log *slog.Logger, bookings BookingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBookingHistory.New"

		log = log.With(slog.String("op", op))

		email := r.URL.Query().Get("email")
		if email == "" {
			log.Error("email is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("email is required"))
			return
		}

		history := bookings.ListBookingsByEmail(r.Context(), email)

		log.Info("booking history retrieved",
			slog.String("email", email),
			slog.Int("count", len(history)))

		responseOK(w, r, history)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, bookings []models.Booking) {
	render.JSON(w, r, HistoryResponse{
		Response: response.OK(),
		Bookings: bookings,
	})
}
