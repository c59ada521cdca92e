package getAllCourses

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"yogabooker/internal/lib/api/response"
	"yogabooker/internal/models"
)

type CoursesResponse struct {
	response.Response
	Courses []models.Course `json:"courses"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CourseLister
type CourseLister interface {
	ListCourses(ctx context.Context) []models.Course
}

func New(log *slog.Logger, courses CourseLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.course.getAllCourses.New"

		log = log.With(slog.String("op", op))

		list := courses.ListCourses(r.Context())

		log.Info("courses retrieved", slog.Int("count", len(list)))

		render.JSON(w, r, CoursesResponse{
			Response: response.OK(),
			Courses:  list,
		})
	}
}
