package getAllClasses

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"yogabooker/internal/http-server/handlers/class/getAllClasses/mocks"
	"yogabooker/internal/lib/logger/handlers/slogdiscard"
	"yogabooker/internal/models"
)

func TestGetAllClassesHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testInstances := []models.ClassInstance{
		{ID: 1, CourseID: 2, Date: "12/08/2025 09:00", Teacher: "Ana"},
		{ID: 2, CourseID: 3, Date: "13/08/2025 17:30", Teacher: "Ben", Comment: "bring a mat"},
	}

	testCases := []struct {
		name           string
		mockSetup      func(mock *mocks.ClassLister)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success with classes",
			mockSetup: func(m *mocks.ClassLister) {
				m.On("ListInstances", mock.Anything).Return(testInstances)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp ClassesResponse
				err := json.Unmarshal([]byte(body), &resp)
				require.NoError(t, err)

				assert.Equal(t, "OK", resp.Status)
				assert.Equal(t, "", resp.Error)
				require.Len(t, resp.Classes, 2)
				assert.Equal(t, 1, resp.Classes[0].ID)
				assert.Equal(t, "Ana", resp.Classes[0].Teacher)
				assert.Equal(t, "bring a mat", resp.Classes[1].Comment)
			},
		},
		{
			name: "Store failure surfaces as empty list",
			mockSetup: func(m *mocks.ClassLister) {
				m.On("ListInstances", mock.Anything).Return([]models.ClassInstance{})
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp ClassesResponse
				err := json.Unmarshal([]byte(body), &resp)
				require.NoError(t, err)

				assert.Equal(t, "OK", resp.Status)
				assert.Empty(t, resp.Classes)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewClassLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister)

			req, err := http.NewRequest(http.MethodGet, "/classes", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())
		})
	}
}
