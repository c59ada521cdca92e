// Package session binds every request to a per-session cart. The cart used
// to be a process-wide singleton in the original client; carrying it in the
// request context keeps sessions isolated and testable.
package session

import (
	"context"
	"net/http"

	"yogabooker/internal/cart"
)

// Header names the session id on requests and responses. A request without
// one gets a fresh session; the issued id is echoed back so the caller can
// keep its cart across requests.
const Header = "X-Session-ID"

type ctxKey struct{}

func New(registry *cart.Registry) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(Header)
			if id == "" {
				id = registry.NewSession()
			}

			w.Header().Set(Header, id)

			ctx := WithCart(r.Context(), registry.Get(id))
			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// WithCart returns a context carrying the given cart. Exposed for handler
// tests, which skip the middleware.
func WithCart(ctx context.Context, c *cart.Cart) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// CartFromContext returns the cart bound by the middleware, or nil when the
// request never passed through it.
func CartFromContext(ctx context.Context) *cart.Cart {
	c, _ := ctx.Value(ctxKey{}).(*cart.Cart)
	return c
}
