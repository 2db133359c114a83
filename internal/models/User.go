package models

import "gorm.io/gorm"

// User is a staff identity with a stored role (e.g. "admin"). Users are
// provisioned directly in the database; the API only authenticates them.
type User struct {
	gorm.Model
	Username string `json:"username" gorm:"unique"`
	Password string `json:"-"` // bcrypt hash
	Role     string `json:"role"`
}
