package repository

import (
	"gorm.io/gorm"

	"github.com/camden-git/fleetsysbackend/models"
)

type GormAlertRepository struct {
	db *gorm.DB
}

func NewGormAlertRepository(db *gorm.DB) AlertRepository {
	return &GormAlertRepository{db: db}
}

func (r *GormAlertRepository) GetByID(id uint) (*models.Alert, error) {
	var alert models.Alert
	if err := r.db.First(&alert, id).Error; err != nil {
		return nil, err
	}
	return &alert, nil
}

func (r *GormAlertRepository) ListByTruck(truckID uint) ([]models.Alert, error) {
	var alerts []models.Alert
	err := r.db.Where("truck_id = ?", truckID).Order("created_at DESC").Find(&alerts).Error
	return alerts, err
}

// MarkRead sets is_read on an alert. Calling it again is a no-op; nothing
// ever clears the flag.
func (r *GormAlertRepository) MarkRead(id uint) error {
	return r.db.Model(&models.Alert{}).Where("id = ?", id).Update("is_read", true).Error
}
