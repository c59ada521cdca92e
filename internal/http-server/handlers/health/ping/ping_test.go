package ping

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"yogabooker/internal/http-server/handlers/health/ping/mocks"
	"yogabooker/internal/lib/logger/handlers/slogdiscard"
)

func TestPingHandler(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		reachable    bool
		expectedBody string
	}{
		{
			name:         "Reachable",
			reachable:    true,
			expectedBody: `{"status":"OK","reachable":true}`,
		},
		{
			name:         "Unreachable",
			reachable:    false,
			expectedBody: `{"status":"OK","reachable":false}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockChecker := mocks.NewConnectivityChecker(t)
			mockChecker.On("TestConnectivity", mock.Anything).Return(tc.reachable)

			handler := New(slogdiscard.NewDiscardLogger(), mockChecker)

			req, err := http.NewRequest(http.MethodGet, "/health", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
