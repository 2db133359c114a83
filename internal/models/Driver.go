package models

import "gorm.io/gorm"

// Driver holds a driver's profile plus references to the uploaded identity
// documents (KTP id card, SIM driving licence). Ktp and Sim are generated
// filenames under the upload directory, not the file contents; nil means no
// document was uploaded.
type Driver struct {
	gorm.Model
	Name          string  `json:"name"`
	VehicleNumber string  `json:"vehicle_number"`
	Phone         string  `json:"phone"`
	Status        string  `json:"status"`
	VehicleType   string  `json:"vehicle_type"`
	Ktp           *string `json:"ktp"`
	Sim           *string `json:"sim"`
}
