package models

import "time"

// Driver is a person assigned to a truck. Face detections may reference a
// driver; that reference is cleared when the driver is deleted.
type Driver struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	TruckID       uint   `json:"truck_id" gorm:"index;not null"`
	Name          string `json:"name" gorm:"size:150;not null"`
	Phone         string `json:"phone" gorm:"size:20"`
	LicenseNumber string `json:"license_number" gorm:"size:50"`
	PhotoURL      string `json:"photo_url" gorm:"size:255"`

	FaceDetections []FaceDetection `json:"-" gorm:"constraint:OnDelete:SET NULL"`

	CreatedAt time.Time `json:"created_at"`
}
