package repository

import (
	"sort"

	"github.com/facette/natsort"
	"gorm.io/gorm"

	"github.com/camden-git/fleetsysbackend/models"
)

type GormTruckRepository struct {
	db *gorm.DB
}

func NewGormTruckRepository(db *gorm.DB) TruckRepository {
	return &GormTruckRepository{db: db}
}

func (r *GormTruckRepository) GetByID(id uint) (*models.Truck, error) {
	var truck models.Truck
	if err := r.db.First(&truck, id).Error; err != nil {
		return nil, err
	}
	return &truck, nil
}

// ListByOwner returns the user's trucks, newest first. Creation times have
// second resolution in SQLite, so trucks created in the same second fall
// back to natural truck-number order to keep the listing stable.
func (r *GormTruckRepository) ListByOwner(ownerID uint) ([]models.Truck, error) {
	var trucks []models.Truck
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&trucks).Error
	if err != nil {
		return nil, err
	}

	sort.SliceStable(trucks, func(i, j int) bool {
		if !trucks[i].CreatedAt.Equal(trucks[j].CreatedAt) {
			return trucks[i].CreatedAt.After(trucks[j].CreatedAt)
		}
		return natsort.Compare(trucks[i].TruckNumber, trucks[j].TruckNumber)
	})
	return trucks, nil
}
