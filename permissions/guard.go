package permissions

import (
	"errors"

	"gorm.io/gorm"

	"github.com/camden-git/fleetsysbackend/auth"
	"github.com/camden-git/fleetsysbackend/models"
	"github.com/camden-git/fleetsysbackend/repository"
)

var (
	// ErrUnauthenticated means no valid session accompanied the request.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrAccessDenied means the truck does not exist or belongs to another
	// user. The two cases are deliberately indistinguishable to callers.
	ErrAccessDenied = errors.New("access denied")
)

// TruckGuard answers the one authorization question this system has:
// does the session's user own the truck a resource hangs off of? Every
// truck-scoped read and mutation goes through it before touching child rows.
type TruckGuard struct {
	trucks repository.TruckRepository
}

func NewTruckGuard(trucks repository.TruckRepository) *TruckGuard {
	return &TruckGuard{trucks: trucks}
}

// TruckOwnedBy reports whether the truck exists and is owned by userID.
func (g *TruckGuard) TruckOwnedBy(truckID, userID uint) (bool, error) {
	truck, err := g.trucks.GetByID(truckID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return truck.OwnerID == userID, nil
}

// RequireTruckAccess resolves the truck for a session, failing with
// ErrUnauthenticated when there is no session and ErrAccessDenied when the
// truck is missing or owned by someone else.
func (g *TruckGuard) RequireTruckAccess(session *auth.Session, truckID uint) (*models.Truck, error) {
	if session == nil {
		return nil, ErrUnauthenticated
	}

	truck, err := g.trucks.GetByID(truckID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAccessDenied
	}
	if err != nil {
		return nil, err
	}
	if truck.OwnerID != session.UserID {
		return nil, ErrAccessDenied
	}
	return truck, nil
}
