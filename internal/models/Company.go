package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Company is a registered tenant account. Features is the ordered list of
// capability names exposed to its client; it gates nothing server-side.
type Company struct {
	gorm.Model
	Name     string         `json:"name"`
	Username string         `json:"username" gorm:"unique"`
	Password string         `json:"-"` // bcrypt hash, never serialized
	Features pq.StringArray `json:"features" gorm:"type:text[]"`
}
