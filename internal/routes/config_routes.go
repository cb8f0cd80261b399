package routes

import (
	"github.com/gin-gonic/gin"

	"freight_tracker/internal/controllers"
)

func ConfigRoutes(api *gin.RouterGroup) {
	api.GET("/config", controllers.GetConfig)
}
