package models

import "gorm.io/gorm"

// Report is a per-driver operational report filed after a trip.
type Report struct {
	gorm.Model
	UserID   uint    `json:"user_id" gorm:"index"`
	FuelUsed float64 `json:"fuel_used"`
	Duration string  `json:"duration"`
	Delays   float64 `json:"delays"`
}
