package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"freight_tracker/internal/models"
	"freight_tracker/internal/weather"
)

// Fixed placeholders; there is no routing engine behind this service,
// but every saved route carries a distance and a duration.
const (
	stubDistance = 500
	stubDuration = "6 hours"
)

var (
	defaultStartCoords = []float64{30.5234, 50.4501} // Kyiv
	defaultEndCoords   = []float64{30.6231, 46.4825} // Odesa
)

type RouteController struct {
	DB      *gorm.DB
	Weather weather.Provider
}

func NewRouteController(db *gorm.DB, provider weather.Provider) *RouteController {
	return &RouteController{DB: db, Weather: provider}
}

// RouteResponse mirrors models.Route with the coordinates decoded from WKB
// for JSON output.
type RouteResponse struct {
	ID          uint                 `json:"ID"`
	CreatedAt   time.Time            `json:"CreatedAt"`
	UpdatedAt   time.Time            `json:"UpdatedAt"`
	UserID      uint                 `json:"user_id"`
	VehicleID   uint                 `json:"vehicle_id"`
	StartPoint  string               `json:"start_point"`
	EndPoint    string               `json:"end_point"`
	Coordinates map[string][]float64 `json:"coordinates"`
	Distance    float64              `json:"distance"`
	Duration    string               `json:"duration"`
	WeatherData models.WeatherData   `json:"weather_data"`
	TrafficData models.TrafficData   `json:"traffic_data"`
	CargoID     uint                 `json:"cargo_id"`
	Cargo       *models.Cargo        `json:"cargo,omitempty"`
}

// toRouteResponse converts a models.Route to a RouteResponse
func toRouteResponse(route models.Route) RouteResponse {
	start, _ := models.CoordsFromWKB(route.StartGeom)
	end, _ := models.CoordsFromWKB(route.EndGeom)
	return RouteResponse{
		ID:          route.ID,
		CreatedAt:   route.CreatedAt,
		UpdatedAt:   route.UpdatedAt,
		UserID:      route.UserID,
		VehicleID:   route.VehicleID,
		StartPoint:  route.StartPoint,
		EndPoint:    route.EndPoint,
		Coordinates: map[string][]float64{"start": start, "end": end},
		Distance:    route.Distance,
		Duration:    route.Duration,
		WeatherData: route.WeatherData,
		TrafficData: route.TrafficData,
		CargoID:     route.CargoID,
		Cargo:       route.Cargo,
	}
}

type createRouteInput struct {
	StartPoint       string    `json:"start_point" binding:"required"`
	EndPoint         string    `json:"end_point" binding:"required"`
	VehicleID        uint      `json:"vehicleId" binding:"required"`
	CargoID          uint      `json:"cargo_id" binding:"required"`
	StartCoordinates []float64 `json:"start_coordinates"`
	EndCoordinates   []float64 `json:"end_coordinates"`
}

// CreateRoute persists a new route bound to the authenticated driver. The
// weather lookup is best effort; a provider failure never rejects the route.
func (rc *RouteController) CreateRoute(c *gin.Context) {
	userID := uint(c.MustGet("user_id").(float64))

	var input createRouteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var vehicle models.Vehicle
	if err := rc.DB.First(&vehicle, input.VehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	var cargo models.Cargo
	if err := rc.DB.First(&cargo, input.CargoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cargo not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	startCoords := input.StartCoordinates
	if len(startCoords) != 2 {
		startCoords = defaultStartCoords
	}
	endCoords := input.EndCoordinates
	if len(endCoords) != 2 {
		endCoords = defaultEndCoords
	}

	startGeom, err := models.CoordsToWKB(startCoords)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start coordinates: " + err.Error()})
		return
	}
	endGeom, err := models.CoordsToWKB(endCoords)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end coordinates: " + err.Error()})
		return
	}

	snap, err := rc.Weather.Fetch(c.Request.Context(), input.StartPoint)
	if err != nil {
		snap = weather.DefaultSnapshot
	}

	route := models.Route{
		UserID:      userID,
		VehicleID:   vehicle.ID,
		StartPoint:  input.StartPoint,
		EndPoint:    input.EndPoint,
		StartGeom:   startGeom,
		EndGeom:     endGeom,
		Distance:    stubDistance,
		Duration:    stubDuration,
		WeatherData: models.WeatherData{Temperature: snap.Temperature, Condition: snap.Condition},
		TrafficData: models.TrafficData{Status: "normal"},
		CargoID:     cargo.ID,
	}
	if err := rc.DB.Create(&route).Error; err != nil {
		logrus.WithError(err).Error("CreateRoute: failed to save route")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create route: " + err.Error()})
		return
	}

	route.Cargo = &cargo
	c.JSON(http.StatusCreated, gin.H{"route": toRouteResponse(route)})
}

// ListRoutes returns the caller's routes with cargo expanded inline,
// optionally narrowed to one vehicle.
func (rc *RouteController) ListRoutes(c *gin.Context) {
	userID := uint(c.MustGet("user_id").(float64))

	query := rc.DB.Preload("Cargo").Where("user_id = ?", userID)
	if v := c.Query("vehicleId"); v != "" {
		vehicleID, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicleId filter"})
			return
		}
		query = query.Where("vehicle_id = ?", uint(vehicleID))
	}

	var routes []models.Route
	if err := query.Find(&routes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching routes: " + err.Error()})
		return
	}

	routeResponses := make([]RouteResponse, 0, len(routes))
	for _, r := range routes {
		routeResponses = append(routeResponses, toRouteResponse(r))
	}
	c.JSON(http.StatusOK, gin.H{"data": routeResponses})
}
