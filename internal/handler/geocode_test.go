package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sunchart-api/internal/geocode"
	"sunchart-api/internal/models"
)

// MockGeoCodeService is a mock implementation of the GeoCodeService interface
type MockGeoCodeService struct {
	mock.Mock
}

func (m *MockGeoCodeService) Resolve(ctx context.Context, name string) (models.Location, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(models.Location), args.Error(1)
}

func TestGeoCodeHandler_GeoCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	paris := models.Location{
		Name:      "Paris",
		Country:   "France",
		Latitude:  48.85341,
		Longitude: 2.3488,
		Timezone:  "Europe/Paris",
		UTCOffset: 1,
	}

	tests := []struct {
		name           string
		query          string
		mockLocation   models.Location
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "missing query parameter",
			query:          "",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "missing required query parameter 'q'"},
		},
		{
			name:           "successful resolution",
			query:          "Paris, France",
			mockLocation:   paris,
			expectedStatus: http.StatusOK,
			expectedBody:   paris,
		},
		{
			name:           "unknown place",
			query:          "xyzzy nowhere",
			mockError:      geocode.ErrNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   gin.H{"error": "place not found"},
		},
		{
			name:           "geocoder down",
			query:          "Paris, France",
			mockError:      geocode.ErrServiceUnavailable,
			expectedStatus: http.StatusBadGateway,
			expectedBody:   gin.H{"error": "geocoding service unavailable"},
		},
		{
			name:           "unexpected error",
			query:          "Paris, France",
			mockError:      errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockGeoCodeService)
			handler := NewGeoCodeHandler(mockSvc)

			if tt.query != "" {
				mockSvc.On("Resolve", mock.Anything, tt.query).Return(tt.mockLocation, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/geocode", nil)
			if tt.query != "" {
				q := req.URL.Query()
				q.Add("q", tt.query)
				req.URL.RawQuery = q.Encode()
			}
			w := httptest.NewRecorder()

			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.GeoCode(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			expected, err := json.Marshal(tt.expectedBody)
			require.NoError(t, err)
			assert.JSONEq(t, string(expected), w.Body.String())

			if tt.query != "" {
				mockSvc.AssertExpectations(t)
			}
		})
	}
}
