// internal/models/user.go
package models

import "gorm.io/gorm"

const (
	RoleAdmin  = "Admin"
	RoleDriver = "Driver"
)

type User struct {
	gorm.Model
	Login    string `json:"login" gorm:"unique"`
	Password string `json:"-"` // bcrypt hash, never serialized
	Role     string `json:"role"` // "Admin" or "Driver"
}

// ValidRole reports whether role is one of the accepted account roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleDriver
}
