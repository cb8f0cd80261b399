package routes

import (
	"github.com/gin-gonic/gin"

	"freight_tracker/internal/controllers"
	"freight_tracker/internal/middleware"
)

func RouteRoutes(api *gin.RouterGroup, ctrl *controllers.RouteController) {
	routes := api.Group("/routes")
	routes.Use(middleware.RequireAuth())
	{
		routes.GET("", ctrl.ListRoutes)
		routes.POST("", ctrl.CreateRoute)
	}
}
