package api

import (
	"net/http"

	"household-energy-sim/internal/api/handlers"
	"household-energy-sim/internal/api/middleware"
	"household-energy-sim/internal/cost"
	"household-energy-sim/internal/data"
	"household-energy-sim/internal/model"

	"github.com/gin-gonic/gin"
)

// Options wires the router's collaborators.
type Options struct {
	UnitCosts   cost.UnitCostTable
	LoadProfile model.LoadProfile
	BatteryDir  string
	Cache       *data.ResultCache
	// AllowedOrigins overrides CORS_ALLOWED_ORIGINS when set.
	AllowedOrigins []string
	// DisableRequestLog drops the per-request log line (tests).
	DisableRequestLog bool
}

func NewRouter(opts Options) *gin.Engine {
	router := gin.New()

	if len(opts.AllowedOrigins) > 0 {
		router.Use(middleware.CORSWithOrigins(opts.AllowedOrigins))
	} else {
		router.Use(middleware.CORS())
	}
	if !opts.DisableRequestLog {
		router.Use(middleware.Logger())
	}
	router.Use(middleware.ErrorHandler())

	mixHandler := handlers.NewMixHandler(opts.UnitCosts, opts.LoadProfile)
	batteryHandler := handlers.NewBatteryHandler(opts.BatteryDir)
	dispatchHandler := handlers.NewDispatchHandler(opts.Cache, batteryHandler)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/mix", mixHandler.SelectMix)
		api.POST("/mix/annual", mixHandler.SelectAnnualMix)
		api.GET("/unit-costs", mixHandler.UnitCosts)

		api.POST("/dispatch", dispatchHandler.RunDispatch)
		api.GET("/dispatch/:id/steps", dispatchHandler.GetSteps)
		api.POST("/dispatch/sizing", dispatchHandler.Sizing)

		api.GET("/batteries", batteryHandler.ListBatteries)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})
	return router
}
