package ping

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"yogabooker/internal/lib/api/response"
)

type PingResponse struct {
	response.Response
	Reachable bool `json:"reachable"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ConnectivityChecker
type ConnectivityChecker interface {
	TestConnectivity(ctx context.Context) bool
}

// New reports whether the remote store answers its bounded probe. The
// endpoint itself always returns 200; reachability is in the body.
func New(log *slog.Logger, checker ConnectivityChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.health.ping.New"

		log = log.With(slog.String("op", op))

		reachable := checker.TestConnectivity(r.Context())

		log.Info("connectivity probe completed", slog.Bool("reachable", reachable))

		render.JSON(w, r, PingResponse{
			Response:  response.OK(),
			Reachable: reachable,
		})
	}
}
