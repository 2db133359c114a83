package models

import "gorm.io/gorm"

// Vehicle is read-only through the API; rows are maintained out of band.
type Vehicle struct {
	gorm.Model
	VehicleNumber string `json:"vehicle_number"`
	VehicleType   string `json:"vehicle_type"`
}
