package models

import "time"

// FaceDetection is a stored driver-identification event captured by a
// truck's cabin camera. DriverID is nil when no driver was matched or the
// matched driver has since been deleted.
type FaceDetection struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	TruckID     uint      `json:"truck_id" gorm:"index;not null"`
	DriverID    *uint     `json:"driver_id"`
	ImageURL    string    `json:"image_url" gorm:"size:255"`
	Confidence  float64   `json:"confidence"` // 0-100
	MatchResult string    `json:"match_result" gorm:"size:50"`
	DetectedAt  time.Time `json:"detected_at" gorm:"autoCreateTime"`
}
