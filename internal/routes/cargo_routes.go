package routes

import (
	"github.com/gin-gonic/gin"

	"freight_tracker/internal/controllers"
	"freight_tracker/internal/middleware"
)

func CargoRoutes(api *gin.RouterGroup, ctrl *controllers.CargoController) {
	cargos := api.Group("/cargos")
	cargos.Use(middleware.RequireAuth())
	{
		cargos.POST("", ctrl.CreateCargo)
		cargos.PATCH("/:id", ctrl.UpdateStatus)
	}
}
