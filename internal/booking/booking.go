// Package booking runs the submission workflow: validate, post, clear.
package booking

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"yogabooker/internal/cart"
)

// Submission failure reasons, checked with errors.Is at the HTTP boundary.
var (
	ErrEmailRequired = errors.New("email is required")
	ErrEmailInvalid  = errors.New("email is invalid")
	ErrCartEmpty     = errors.New("cart is empty")
	ErrUnreachable   = errors.New("remote store is unreachable")
	ErrSubmitFailed  = errors.New("failed to submit booking")
)

// local@domain.tld, nothing fancier
var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Store
type Store interface {
	InsertBooking(ctx context.Context, email string, instanceIDs []int) bool
	TestConnectivity(ctx context.Context) bool
}

type Service struct {
	log   *slog.Logger
	store Store
}

func New(log *slog.Logger, store Store) *Service {
	return &Service{log: log, store: store}
}

// Submit validates the email and cart, posts the booking and clears the
// cart only on a confirmed success. Preconditions are checked in order and
// each failure leaves the cart untouched so the user can retry without
// re-selecting classes. The returned ids are the ones sent, in cart order.
func (s *Service) Submit(ctx context.Context, c *cart.Cart, email string) ([]int, error) {
	const op = "booking.Submit"

	log := s.log.With(slog.String("op", op))

	email = strings.TrimSpace(email)

	if email == "" {
		return nil, ErrEmailRequired
	}

	if !emailRx.MatchString(email) {
		return nil, ErrEmailInvalid
	}

	if c.IsEmpty() {
		return nil, ErrCartEmpty
	}

	if !s.store.TestConnectivity(ctx) {
		log.Warn("connectivity probe failed, aborting submission")
		return nil, ErrUnreachable
	}

	instanceIDs := c.InstanceIDs()

	if !s.store.InsertBooking(ctx, email, instanceIDs) {
		log.Error("remote store rejected booking",
			slog.Int("items", len(instanceIDs)))
		return nil, ErrSubmitFailed
	}

	c.Clear()

	log.Info("booking submitted",
		slog.String("email", email),
		slog.Int("items", len(instanceIDs)))

	return instanceIDs, nil
}
