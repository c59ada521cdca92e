package clearCart

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"yogabooker/internal/cart"
	"yogabooker/internal/http-server/middleware/session"
	"yogabooker/internal/lib/logger/handlers/slogdiscard"
	"yogabooker/internal/models"
)

func TestClearCartHandler(t *testing.T) {
	t.Parallel()

	sessionCart := cart.New()
	sessionCart.Add(models.ClassInstance{ID: 1, Date: "12/08/2025", Teacher: "Ana"})
	sessionCart.Add(models.ClassInstance{ID: 2, Date: "13/08/2025", Teacher: "Ben"})

	handler := New(slogdiscard.NewDiscardLogger())

	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	req = req.WithContext(session.WithCart(req.Context(), sessionCart))

	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"OK"}`, rr.Body.String())
	assert.True(t, sessionCart.IsEmpty())
}

func TestClearCartHandlerIdempotent(t *testing.T) {
	t.Parallel()

	sessionCart := cart.New()

	handler := New(slogdiscard.NewDiscardLogger())

	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	req = req.WithContext(session.WithCart(req.Context(), sessionCart))

	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, sessionCart.IsEmpty())
}
