package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sunchart-api/internal/models"
)

// SunHandler handles solar series and status requests
type SunHandler struct {
	service SunService
}

// Service interface for dependency injection
type SunService interface {
	Series(ctx context.Context, place string, start, end models.Date) (*models.SolarSeries, error)
	Status(ctx context.Context, place string) (*models.SunStatus, error)
}

// NewSunHandler creates a new sun handler
func NewSunHandler(svc SunService) *SunHandler {
	return &SunHandler{service: svc}
}

// Series handles GET /api/sun requests
//
//	@Summary	Sunrise, sunset, and day length for each date in a range
//	@Tags		sun
//	@Produce	json
//	@Param		place	query		string	true	"free-text place name"
//	@Param		start	query		string	false	"first date (YYYY-MM-DD), default today"
//	@Param		end		query		string	false	"last date (YYYY-MM-DD), default start"
//	@Success	200		{object}	models.SolarSeries
//	@Failure	400		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Failure	502		{object}	map[string]string
//	@Router		/api/sun [get]
func (h *SunHandler) Series(c *gin.Context) {
	place := c.Query("place")
	if place == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'place'"})
		return
	}

	start := models.DateOf(time.Now())
	if s := c.Query("start"); s != "" {
		parsed, err := models.ParseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'start' date, want YYYY-MM-DD"})
			return
		}
		start = parsed
	}

	end := start
	if s := c.Query("end"); s != "" {
		parsed, err := models.ParseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'end' date, want YYYY-MM-DD"})
			return
		}
		end = parsed
	}

	series, err := h.service.Series(c.Request.Context(), place, start, end)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, series)
}

// Now handles GET /api/sun/now requests
//
//	@Summary	Live sun status for a place
//	@Tags		sun
//	@Produce	json
//	@Param		place	query		string	true	"free-text place name"
//	@Success	200		{object}	models.SunStatus
//	@Failure	400		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Failure	502		{object}	map[string]string
//	@Router		/api/sun/now [get]
func (h *SunHandler) Now(c *gin.Context) {
	place := c.Query("place")
	if place == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'place'"})
		return
	}

	status, err := h.service.Status(c.Request.Context(), place)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
