package getAllClasses

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"yogabooker/internal/lib/api/response"
	"yogabooker/internal/models"
)

type ClassesResponse struct {
	response.Response
	Classes []models.ClassInstance `json:"classes"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ClassLister
type ClassLister interface {
	ListInstances(ctx context.Context) []models.ClassInstance
}

func New(log *slog.Logger, classes ClassLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.class.getAllClasses.New"

		log = log.With(slog.String("op", op))

		// the store client degrades every failure to an empty list, so
		// this path cannot error
		instances := classes.ListInstances(r.Context())

		log.Info("class instances retrieved", slog.Int("count", len(instances)))

		responseOK(w, r, instances)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, instances []models.ClassInstance) {
	render.JSON(w, r, ClassesResponse{
		Response: response.OK(),
		Classes:  instances,
	})
}
