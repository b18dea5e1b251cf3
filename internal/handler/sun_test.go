package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sunchart-api/internal/geocode"
	"sunchart-api/internal/models"
	"sunchart-api/internal/service"
)

// MockSunService is a mock implementation of the SunService interface
type MockSunService struct {
	mock.Mock
}

func (m *MockSunService) Series(ctx context.Context, place string, start, end models.Date) (*models.SolarSeries, error) {
	args := m.Called(ctx, place, start, end)
	series, _ := args.Get(0).(*models.SolarSeries)
	return series, args.Error(1)
}

func (m *MockSunService) Status(ctx context.Context, place string) (*models.SunStatus, error) {
	args := m.Called(ctx, place)
	status, _ := args.Get(0).(*models.SunStatus)
	return status, args.Error(1)
}

func performRequest(h gin.HandlerFunc, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	h(c)
	return w
}

func TestSunHandler_Series(t *testing.T) {
	gin.SetMode(gin.TestMode)

	start := models.Date{Year: 2024, Month: time.June, Day: 18}
	end := models.Date{Year: 2024, Month: time.June, Day: 20}
	series := &models.SolarSeries{
		Location: models.Location{Name: "Reykjavik", Latitude: 64.1466, Longitude: -21.9426},
		Records: []models.DailySolarRecord{
			{
				Date:             start,
				Transition:       models.TransitionNormal,
				Sunrise:          time.Date(2024, time.June, 18, 2, 56, 0, 0, time.UTC),
				Sunset:           time.Date(2024, time.June, 18, 23, 57, 0, 0, time.UTC),
				DayLength:        21 * time.Hour,
				DayLengthMinutes: 1260,
				NoonAltitude:     49.3,
			},
		},
	}

	t.Run("missing place", func(t *testing.T) {
		mockSvc := new(MockSunService)
		w := performRequest(NewSunHandler(mockSvc).Series, "/api/sun?start=2024-06-18")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "Series", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid start date", func(t *testing.T) {
		mockSvc := new(MockSunService)
		w := performRequest(NewSunHandler(mockSvc).Series, "/api/sun?place=Reykjavik&start=18-06-2024")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid end date", func(t *testing.T) {
		mockSvc := new(MockSunService)
		w := performRequest(NewSunHandler(mockSvc).Series, "/api/sun?place=Reykjavik&start=2024-06-18&end=junk")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("successful range", func(t *testing.T) {
		mockSvc := new(MockSunService)
		mockSvc.On("Series", mock.Anything, "Reykjavik", start, end).Return(series, nil)

		w := performRequest(NewSunHandler(mockSvc).Series,
			"/api/sun?place=Reykjavik&start=2024-06-18&end=2024-06-20")
		assert.Equal(t, http.StatusOK, w.Code)

		expected, err := json.Marshal(series)
		require.NoError(t, err)
		assert.JSONEq(t, string(expected), w.Body.String())
		mockSvc.AssertExpectations(t)
	})

	t.Run("end defaults to start", func(t *testing.T) {
		mockSvc := new(MockSunService)
		mockSvc.On("Series", mock.Anything, "Reykjavik", start, start).Return(series, nil)

		w := performRequest(NewSunHandler(mockSvc).Series, "/api/sun?place=Reykjavik&start=2024-06-18")
		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("inverted range", func(t *testing.T) {
		mockSvc := new(MockSunService)
		mockSvc.On("Series", mock.Anything, "Reykjavik", end, start).Return(nil, service.ErrInvalidRange)

		w := performRequest(NewSunHandler(mockSvc).Series,
			"/api/sun?place=Reykjavik&start=2024-06-20&end=2024-06-18")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown place", func(t *testing.T) {
		mockSvc := new(MockSunService)
		mockSvc.On("Series", mock.Anything, "nowhere", start, end).Return(nil, geocode.ErrNotFound)

		w := performRequest(NewSunHandler(mockSvc).Series,
			"/api/sun?place=nowhere&start=2024-06-18&end=2024-06-20")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSunHandler_Now(t *testing.T) {
	gin.SetMode(gin.TestMode)

	status := &models.SunStatus{
		Location:  models.Location{Name: "Paris", Latitude: 48.85, Longitude: 2.35},
		Now:       time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC),
		IsDay:     true,
		NextEvent: "sunset",
	}

	t.Run("missing place", func(t *testing.T) {
		mockSvc := new(MockSunService)
		w := performRequest(NewSunHandler(mockSvc).Now, "/api/sun/now")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		mockSvc := new(MockSunService)
		mockSvc.On("Status", mock.Anything, "Paris").Return(status, nil)

		w := performRequest(NewSunHandler(mockSvc).Now, "/api/sun/now?place=Paris")
		assert.Equal(t, http.StatusOK, w.Code)

		expected, err := json.Marshal(status)
		require.NoError(t, err)
		assert.JSONEq(t, string(expected), w.Body.String())
	})

	t.Run("geocoder down", func(t *testing.T) {
		mockSvc := new(MockSunService)
		mockSvc.On("Status", mock.Anything, "Paris").Return(nil, geocode.ErrServiceUnavailable)

		w := performRequest(NewSunHandler(mockSvc).Now, "/api/sun/now?place=Paris")
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}
