package addToCart

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"yogabooker/internal/cart"
	"yogabooker/internal/http-server/middleware/session"
	"yogabooker/internal/lib/api/response"
	"yogabooker/internal/lib/logger/sl"
	"yogabooker/internal/models"
)

type AddRequest struct {
	InstanceID int `json:"instance_id" validate:"required"`
}

type AddResponse struct {
	response.Response
	Outcome string `json:"outcome,omitempty"`
	Count   int    `json:"count"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ClassLister
type ClassLister interface {
	ListInstances(ctx context.Context) []models.ClassInstance
}

// New adds a class instance to the session cart. The instance is looked up
// live and snapshotted at add time; later changes to it do not reach the
// cart.
func New(log *slog.Logger, classes ClassLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.cart.addToCart.New"

		log = log.With(slog.String("op", op))

		sessionCart := session.CartFromContext(r.Context())
		if sessionCart == nil {
			log.Error("no session cart in request context")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("no session"))
			return
		}

		var req AddRequest

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

		instance, found := findInstance(classes.ListInstances(r.Context()), req.InstanceID)
		if !found {
			log.Error("class instance not found", slog.Int("instance_id", req.InstanceID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("class instance not found"))
			return
		}

		outcome := sessionCart.Add(instance)

		switch outcome {
		case cart.AlreadyPresent:
			log.Info("class already in cart", slog.Int("instance_id", req.InstanceID))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("class is already in the cart"))
			return
		case cart.Full:
			log.Info("cart is full", slog.Int("instance_id", req.InstanceID))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("cart is full"))
			return
		}

		log.Info("class added to cart",
			slog.Int("instance_id", req.InstanceID),
			slog.Int("count", sessionCart.Len()))

		responseOK(w, r, outcome, sessionCart.Len())
	}
}

func findInstance(instances []models.ClassInstance, id int) (models.ClassInstance, bool) {
	for _, instance := range instances {
		if instance.ID == id {
			return instance, true
		}
	}

	return models.ClassInstance{}, false
}

func responseOK(w http.ResponseWriter, r *http.Request, outcome cart.Outcome, count int) {
	render.JSON(w, r, AddResponse{
		Response: response.OK(),
		Outcome:  outcome.String(),
		Count:    count,
	})
}
