// internal/models/vehicle.go
package models

import "gorm.io/gorm"

const (
	VehicleActive   = "Active"
	VehicleInactive = "Inactive"
)

const (
	VehicleTruck = "Truck"
	VehicleVan   = "Van"
	VehicleCar   = "Car"
)

type Vehicle struct {
	gorm.Model
	LicensePlate string `json:"license_plate" gorm:"unique"`
	Type         string `json:"type"`   // "Truck", "Van", "Car"
	Status       string `json:"status" gorm:"default:Active"`
	DriverID     uint   `json:"driver_id" gorm:"index"` // link to the driver user
	Driver       User   `json:"-" gorm:"foreignKey:DriverID"`
}
