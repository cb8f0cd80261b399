package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"freight_tracker/internal/models"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController { return &ReportController{DB: db} }

type createReportInput struct {
	FuelUsed float64 `json:"fuel_used"`
	Duration string  `json:"duration"`
	Delays   float64 `json:"delays"`
}

// CreateReport files an operational report bound to the acting driver.
func (rc *ReportController) CreateReport(c *gin.Context) {
	userID := uint(c.MustGet("user_id").(float64))

	var input createReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.FuelUsed < 0 || input.Delays < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fuel_used and delays must be non-negative"})
		return
	}

	report := models.Report{
		UserID:   userID,
		FuelUsed: input.FuelUsed,
		Duration: input.Duration,
		Delays:   input.Delays,
	}
	if err := rc.DB.Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"report": report})
}

// ListReports returns every report filed by the caller, no pagination.
func (rc *ReportController) ListReports(c *gin.Context) {
	userID := uint(c.MustGet("user_id").(float64))

	var reports []models.Report
	if err := rc.DB.Where("user_id = ?", userID).Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching reports: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}
