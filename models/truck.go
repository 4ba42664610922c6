package models

import "time"

// Truck is a fleet vehicle and the root of ownership for all telemetry and
// media records. Child rows are removed when the truck is deleted.
type Truck struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	TruckNumber  string `json:"truck_number" gorm:"size:50;not null"`
	OwnerID      uint   `json:"owner_id" gorm:"index;not null"`
	LicensePlate string `json:"license_plate" gorm:"size:50"`
	Model        string `json:"model" gorm:"size:100"`
	Status       string `json:"status" gorm:"size:50;default:active"`

	Drivers         []Driver         `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	GpsLocations    []GpsLocation    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	FaceDetections  []FaceDetection  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Alerts          []Alert          `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	VideoRecordings []VideoRecording `json:"-" gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
}
