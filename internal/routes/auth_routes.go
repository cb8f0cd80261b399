package routes

import (
	"github.com/gin-gonic/gin"

	"freight_tracker/internal/controllers"
)

func AuthRoutes(api *gin.RouterGroup, ctrl *controllers.AuthController) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", ctrl.Register)
		auth.POST("/login", ctrl.Login)
	}
}
