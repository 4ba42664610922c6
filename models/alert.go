package models

import "time"

// Alert is a notification about an anomaly tied to a truck. IsRead only ever
// transitions from false to true.
type Alert struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TruckID   uint      `json:"truck_id" gorm:"index;not null"`
	AlertType string    `json:"alert_type" gorm:"size:100;not null"`
	Message   string    `json:"message" gorm:"not null"`
	Severity  string    `json:"severity" gorm:"size:20;default:medium"`
	IsRead    bool      `json:"is_read" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}
