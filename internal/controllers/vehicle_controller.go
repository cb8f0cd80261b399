package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"freight_tracker/internal/models"
)

type VehicleController struct {
	DB *gorm.DB
}

func NewVehicleController(db *gorm.DB) *VehicleController { return &VehicleController{DB: db} }

// ListVehicles returns the caller's vehicles that are currently Active.
// Vehicles are provisioned by the seed tool only; there is no create
// endpoint.
func (v *VehicleController) ListVehicles(c *gin.Context) {
	userID := uint(c.MustGet("user_id").(float64))

	var vehicles []models.Vehicle
	if err := v.DB.Where("driver_id = ? AND status = ?", userID, models.VehicleActive).Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching vehicles: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}
