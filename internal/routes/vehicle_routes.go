package routes

import (
	"github.com/gin-gonic/gin"

	"freight_tracker/internal/controllers"
	"freight_tracker/internal/middleware"
)

func VehicleRoutes(api *gin.RouterGroup, ctrl *controllers.VehicleController) {
	vehicles := api.Group("/vehicles")
	vehicles.Use(middleware.RequireAuth())
	{
		vehicles.GET("", ctrl.ListVehicles)
	}
}
