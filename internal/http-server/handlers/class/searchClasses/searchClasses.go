package searchClasses

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"yogabooker/internal/lib/api/response"
	"yogabooker/internal/models"
	"yogabooker/internal/search"
)

type SearchResponse struct {
	response.Response
	Classes []models.ClassInstance `json:"classes"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ClassLister
type ClassLister interface {
	ListInstances(ctx context.Context) []models.ClassInstance
}

// New filters the full instance list by the optional "day" and "time" query
// parameters. Both absent means everything matches; nothing matching is an
// empty list, not an error.
func New(log *slog.Logger, classes ClassLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.class.searchClasses.New"

		log = log.With(slog.String("op", op))

		day := r.URL.Query().Get("day")
		timeQuery := r.URL.Query().Get("time")

		all := classes.ListInstances(r.Context())
		matched := search.Filter(all, day, timeQuery)

		log.Info("class search completed",
			slog.String("day", day),
			slog.String("time", timeQuery),
			slog.Int("matched", len(matched)))

		responseOK(w, r, matched)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, instances []models.ClassInstance) {
	render.JSON(w, r, SearchResponse{
		Response: response.OK(),
		Classes:  instances,
	})
}
