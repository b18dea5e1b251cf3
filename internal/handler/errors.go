package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sunchart-api/internal/geocode"
	"sunchart-api/internal/service"
	"sunchart-api/internal/solar"
)

// abortWithError maps domain errors onto HTTP statuses and writes the JSON
// error body. Resolution failures are the caller's problem (404) or the
// upstream's (502); calculation and range failures are bad requests.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, geocode.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "place not found"})
	case errors.Is(err, geocode.ErrServiceUnavailable):
		log.Warn().Err(err).Msg("geocoding service unavailable")
		c.JSON(http.StatusBadGateway, gin.H{"error": "geocoding service unavailable"})
	case errors.Is(err, service.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": "start date is after end date"})
	case errors.Is(err, service.ErrRangeTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": "date range too long"})
	case errors.Is(err, solar.ErrInvalidLatitude), errors.Is(err, solar.ErrInvalidLongitude):
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
	default:
		log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
