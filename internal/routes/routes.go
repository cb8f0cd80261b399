package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"freight_tracker/internal/controllers"
	"freight_tracker/internal/middleware"
	"freight_tracker/internal/weather"
)

// SetupRouter wires every endpoint group under /api onto a fresh engine.
func SetupRouter(db *gorm.DB, provider weather.Provider) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())
	r.Use(middleware.RequestID())

	api := r.Group("/api")

	ConfigRoutes(api)
	AuthRoutes(api, controllers.NewAuthController(db))
	VehicleRoutes(api, controllers.NewVehicleController(db))
	RouteRoutes(api, controllers.NewRouteController(db, provider))
	CargoRoutes(api, controllers.NewCargoController(db))
	ReportRoutes(api, controllers.NewReportController(db))

	return r
}
