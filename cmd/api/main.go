package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "sunchart-api/docs"
	"sunchart-api/internal/config"
	"sunchart-api/internal/geocode"
	"sunchart-api/internal/handler"
	"sunchart-api/internal/service"
	"sunchart-api/internal/solar"
)

//	@title			SunChart API
//	@version		1.0
//	@description	Geocodes a place name and serves sunrise, sunset, and day-length series for a date range.
//	@BasePath		/

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	gin.SetMode(config.GinMode)

	// Initialize layers
	resolver := geocode.NewCache(
		geocode.NewClient(config.Geocoder.BaseURL, config.Geocoder.Timeout),
		config.Geocoder.CacheSize,
		config.Geocoder.CacheTTL,
	)
	calculator := solar.NewCalculator()
	sunService := service.NewSunService(resolver, calculator, config.Sun.MaxRangeDays)

	geoCodeHandler := handler.NewGeoCodeHandler(sunService)
	sunHandler := handler.NewSunHandler(sunService)
	liveHandler := handler.NewLiveHandler(sunService, config.Sun.LiveInterval)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/api/geocode", geoCodeHandler.GeoCode)
	r.GET("/api/sun", sunHandler.Series)
	r.GET("/api/sun/now", sunHandler.Now)
	r.GET("/api/live", liveHandler.Live)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Chart page
	r.StaticFile("/", config.WebPath+"/index.html")

	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
