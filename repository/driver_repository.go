package repository

import (
	"gorm.io/gorm"

	"github.com/camden-git/fleetsysbackend/models"
)

type GormDriverRepository struct {
	db *gorm.DB
}

func NewGormDriverRepository(db *gorm.DB) DriverRepository {
	return &GormDriverRepository{db: db}
}

func (r *GormDriverRepository) Create(driver *models.Driver) error {
	return r.db.Create(driver).Error
}

func (r *GormDriverRepository) ListByTruck(truckID uint) ([]models.Driver, error) {
	var drivers []models.Driver
	err := r.db.Where("truck_id = ?", truckID).Order("id ASC").Find(&drivers).Error
	return drivers, err
}

// UpdateScoped updates a driver only when it belongs to the given truck.
// A non-matching (truckID, driverID) pair is a silent no-op.
func (r *GormDriverRepository) UpdateScoped(truckID, driverID uint, name, phone, licenseNumber string) error {
	return r.db.Model(&models.Driver{}).
		Where("id = ? AND truck_id = ?", driverID, truckID).
		Updates(map[string]interface{}{
			"name":           name,
			"phone":          phone,
			"license_number": licenseNumber,
		}).Error
}

// DeleteScoped removes a driver only when it belongs to the given truck.
// Face detections referencing the driver keep their rows with driver_id
// cleared by the schema's SET NULL constraint.
func (r *GormDriverRepository) DeleteScoped(truckID, driverID uint) error {
	return r.db.Where("id = ? AND truck_id = ?", driverID, truckID).
		Delete(&models.Driver{}).Error
}
