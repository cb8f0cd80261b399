package models

import "gorm.io/gorm"

// CargoStatus enumerates the delivery lifecycle of a cargo item.
const (
	CargoInTransit = "in_transit"
	CargoDelivered = "delivered"
	CargoRetry     = "retry"
)

const (
	PriorityStandard = "standard"
	PriorityUrgent   = "urgent"
)

// MaxCargoWeight is the inclusive upper bound in the same unit the
// clients submit (tonnes).
const MaxCargoWeight = 30

type Cargo struct {
	gorm.Model
	RouteID     *uint   `json:"route_id"` // nil until linked to a route
	Weight      float64 `json:"weight"`
	Destination string  `json:"destination"`
	Status      string  `json:"status" gorm:"default:in_transit"`
	Priority    string  `json:"priority" gorm:"default:standard"`
}

// ValidCargoStatus reports whether s is an accepted cargo status.
// Any valid status may overwrite any other; there is no transition guard.
func ValidCargoStatus(s string) bool {
	return s == CargoInTransit || s == CargoDelivered || s == CargoRetry
}

// ValidCargoPriority reports whether p is an accepted priority level.
func ValidCargoPriority(p string) bool {
	return p == PriorityStandard || p == PriorityUrgent
}
