package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"freight_tracker/internal/models"
)

type CargoController struct {
	DB *gorm.DB
}

func NewCargoController(db *gorm.DB) *CargoController { return &CargoController{DB: db} }

type createCargoInput struct {
	RouteID     uint     `json:"route_id" binding:"required"`
	Weight      *float64 `json:"weight" binding:"required"`
	Destination string   `json:"destination" binding:"required"`
	Priority    string   `json:"priority"`
}

// CreateCargo registers a cargo item against an existing route. Weight is
// bounded inclusively at both ends; priority defaults to standard.
func (ct *CargoController) CreateCargo(c *gin.Context) {
	var input createCargoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var route models.Route
	if err := ct.DB.First(&route, input.RouteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	if *input.Weight < 0 || *input.Weight > models.MaxCargoWeight {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weight must be between 0 and 30"})
		return
	}

	priority := input.Priority
	if priority == "" {
		priority = models.PriorityStandard
	}
	if !models.ValidCargoPriority(priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid priority"})
		return
	}

	cargo := models.Cargo{
		RouteID:     &route.ID,
		Weight:      *input.Weight,
		Destination: input.Destination,
		Status:      models.CargoInTransit,
		Priority:    priority,
	}
	if err := ct.DB.Create(&cargo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cargo: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"cargo": cargo})
}

// UpdateStatus overwrites the delivery status. Any valid status may
// replace any other; there is no transition guard.
func (ct *CargoController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cargo ID"})
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidCargoStatus(body.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	var cargo models.Cargo
	if err := ct.DB.First(&cargo, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cargo not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	cargo.Status = body.Status
	if err := ct.DB.Save(&cargo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated", "cargo": cargo})
}
