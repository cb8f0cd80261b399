package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

// WeatherData is the weather snapshot captured once at route creation.
type WeatherData struct {
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
}

func (w WeatherData) Value() (driver.Value, error) { return json.Marshal(w) }

func (w *WeatherData) Scan(src interface{}) error {
	return scanJSON(src, w)
}

// TrafficData is a static traffic snapshot; there is no live traffic feed.
type TrafficData struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

func (t TrafficData) Value() (driver.Value, error) { return json.Marshal(t) }

func (t *TrafficData) Scan(src interface{}) error {
	return scanJSON(src, t)
}

func scanJSON(src, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	}
	return errors.New("unsupported column type for JSON snapshot")
}

// Route links a driver, a vehicle and a cargo item between two points.
// Start/end coordinates are stored in WKB (lng/lat order, SRID 4326);
// controllers convert them to coordinate arrays for API responses.
type Route struct {
	gorm.Model

	UserID    uint `json:"user_id" gorm:"index"`
	VehicleID uint `json:"vehicle_id" gorm:"index"`

	StartPoint string `json:"start_point"`
	EndPoint   string `json:"end_point"`

	StartGeom []byte `json:"-" gorm:"type:bytea"`
	EndGeom   []byte `json:"-" gorm:"type:bytea"`

	Distance float64 `json:"distance"`
	Duration string  `json:"duration"`

	WeatherData WeatherData `json:"weather_data" gorm:"type:jsonb"`
	TrafficData TrafficData `json:"traffic_data" gorm:"type:jsonb"`

	CargoID uint   `json:"cargo_id"`
	Cargo   *Cargo `json:"cargo,omitempty" gorm:"foreignKey:CargoID"`
}
