package repository

import (
	"gorm.io/gorm"

	"github.com/camden-git/fleetsysbackend/models"
)

type GormVideoRecordingRepository struct {
	db *gorm.DB
}

func NewGormVideoRecordingRepository(db *gorm.DB) VideoRecordingRepository {
	return &GormVideoRecordingRepository{db: db}
}

func (r *GormVideoRecordingRepository) Create(recording *models.VideoRecording) error {
	return r.db.Create(recording).Error
}

func (r *GormVideoRecordingRepository) ListByTruck(truckID uint) ([]models.VideoRecording, error) {
	var recordings []models.VideoRecording
	err := r.db.Where("truck_id = ?", truckID).Order("recorded_at DESC").Find(&recordings).Error
	return recordings, err
}

// MarkSaved finalizes a recording with its stored size and duration. The
// capture pipeline is simulated, so callers pass fixed placeholder values.
// Saved recordings never move back to the recording state.
func (r *GormVideoRecordingRepository) MarkSaved(truckID, recordingID uint, fileSize int64, duration int) error {
	return r.db.Model(&models.VideoRecording{}).
		Where("id = ? AND truck_id = ?", recordingID, truckID).
		Updates(map[string]interface{}{
			"status":    models.RecordingStatusSaved,
			"file_size": fileSize,
			"duration":  duration,
		}).Error
}

func (r *GormVideoRecordingRepository) DeleteScoped(truckID, recordingID uint) error {
	return r.db.Where("id = ? AND truck_id = ?", recordingID, truckID).
		Delete(&models.VideoRecording{}).Error
}
