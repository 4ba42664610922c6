package models

import "time"

// Video recording states. A recording starts in RecordingStatusRecording and
// only ever moves forward to RecordingStatusSaved.
const (
	RecordingStatusRecording = "recording"
	RecordingStatusSaved     = "saved"
)

// VideoRecording is metadata for a camera capture on a truck. No actual
// media is stored; FileURL points at where the capture pipeline would
// publish the file.
type VideoRecording struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	TruckID      uint      `json:"truck_id" gorm:"index;not null"`
	CameraNumber int       `json:"camera_number" gorm:"not null"`
	FileURL      string    `json:"file_url" gorm:"size:255"`
	FileSize     int64     `json:"file_size"`
	Duration     int       `json:"duration"` // seconds
	Status       string    `json:"status" gorm:"size:50;default:saved"`
	RecordedAt   time.Time `json:"recorded_at" gorm:"autoCreateTime"`
}
