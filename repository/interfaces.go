package repository

import (
	"github.com/camden-git/fleetsysbackend/models"
)

// UserRepository provides access to dispatch user accounts.
type UserRepository interface {
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
}

// TruckRepository provides access to trucks. Ownership checks always go
// through GetByID or ListByOwner; no other entity is fetched without one.
type TruckRepository interface {
	GetByID(id uint) (*models.Truck, error)
	ListByOwner(ownerID uint) ([]models.Truck, error)
}

// DriverRepository provides access to drivers. The scoped operations take a
// (truckID, driverID) pair and silently do nothing when no such row exists.
type DriverRepository interface {
	Create(driver *models.Driver) error
	ListByTruck(truckID uint) ([]models.Driver, error)
	UpdateScoped(truckID, driverID uint, name, phone, licenseNumber string) error
	DeleteScoped(truckID, driverID uint) error
}

// AlertRepository provides access to alerts. MarkRead is idempotent; is_read
// never transitions back to false.
type AlertRepository interface {
	GetByID(id uint) (*models.Alert, error)
	ListByTruck(truckID uint) ([]models.Alert, error)
	MarkRead(id uint) error
}

// VideoRecordingRepository provides access to recording metadata. MarkSaved
// moves a recording to the saved state; there is no reverse transition.
type VideoRecordingRepository interface {
	Create(recording *models.VideoRecording) error
	ListByTruck(truckID uint) ([]models.VideoRecording, error)
	MarkSaved(truckID, recordingID uint, fileSize int64, duration int) error
	DeleteScoped(truckID, recordingID uint) error
}
