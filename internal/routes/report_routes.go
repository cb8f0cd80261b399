package routes

import (
	"github.com/gin-gonic/gin"

	"freight_tracker/internal/controllers"
	"freight_tracker/internal/middleware"
)

func ReportRoutes(api *gin.RouterGroup, ctrl *controllers.ReportController) {
	reports := api.Group("/reports")
	reports.Use(middleware.RequireAuth())
	{
		reports.GET("", ctrl.ListReports)
		reports.POST("", ctrl.CreateReport)
	}
}
