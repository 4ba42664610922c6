package models

import "time"

// GpsLocation is a single point in a truck's position history. Rows are
// append-only; the newest row is the truck's current location.
type GpsLocation struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TruckID   uint      `json:"truck_id" gorm:"index;not null"`
	Latitude  float64   `json:"latitude" gorm:"not null"`
	Longitude float64   `json:"longitude" gorm:"not null"`
	Timestamp time.Time `json:"timestamp" gorm:"autoCreateTime;index"`
}
