package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"sunchart-api/internal/models"
)

// GeoCodeHandler handles geocoding requests
type GeoCodeHandler struct {
	service GeoCodeService
}

// Service interface for dependency injection
type GeoCodeService interface {
	Resolve(context.Context, string) (models.Location, error)
}

// NewGeoCodeHandler creates a new geocode handler
func NewGeoCodeHandler(svc GeoCodeService) *GeoCodeHandler {
	return &GeoCodeHandler{service: svc}
}

// GeoCode handles GET /api/geocode requests
//
//	@Summary	Resolve a place name to coordinates and a time zone
//	@Tags		geocode
//	@Produce	json
//	@Param		q	query		string	true	"free-text place name"
//	@Success	200	{object}	models.Location
//	@Failure	400	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Failure	502	{object}	map[string]string
//	@Router		/api/geocode [get]
func (h *GeoCodeHandler) GeoCode(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	location, err := h.service.Resolve(c.Request.Context(), query)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, location)
}
