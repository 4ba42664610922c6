package handlers

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/camden-git/fleetsysbackend/models"
	"github.com/camden-git/fleetsysbackend/permissions"
	"github.com/camden-git/fleetsysbackend/repository"
)

const defaultDriverPhotoURL = "/static/images/default_driver.jpg"

type DriverHandler struct {
	Guard   *permissions.TruckGuard
	Drivers repository.DriverRepository
	Log     *logrus.Logger
}

// authorizeTruck runs the common authenticate-then-authorize step for the
// driver mutations and writes the error response on failure.
func (h *DriverHandler) authorizeTruck(w http.ResponseWriter, r *http.Request) (uint, bool) {
	session := SessionFromContext(r)
	truckID, err := uintParam(r, "truck_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "bad_request", "Invalid truck ID format")
		return 0, false
	}

	if _, err := h.Guard.RequireTruckAccess(session, truckID); err != nil {
		switch {
		case errors.Is(err, permissions.ErrUnauthenticated):
			WriteAPIError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		case errors.Is(err, permissions.ErrAccessDenied):
			WriteAPIError(w, http.StatusForbidden, "forbidden", "Access denied")
		default:
			h.Log.Errorf("failed to authorize truck %d: %v", truckID, err)
			WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Authorization failed")
		}
		return 0, false
	}
	return truckID, true
}

// Add creates a driver on an owned truck and sends the client back to the
// truck view.
func (h *DriverHandler) Add(w http.ResponseWriter, r *http.Request) {
	truckID, ok := h.authorizeTruck(w, r)
	if !ok {
		return
	}

	form := DriverForm{
		Name:          r.FormValue("name"),
		Phone:         r.FormValue("phone"),
		LicenseNumber: r.FormValue("license_number"),
		PhotoURL:      r.FormValue("photo_url"),
	}
	if form.PhotoURL == "" {
		form.PhotoURL = defaultDriverPhotoURL
	}
	if err := validate.Struct(form); err != nil {
		WriteAPIError(w, http.StatusBadRequest, "validation_error", "Missing required field: name")
		return
	}

	driver := models.Driver{
		TruckID:       truckID,
		Name:          form.Name,
		Phone:         form.Phone,
		LicenseNumber: form.LicenseNumber,
		PhotoURL:      form.PhotoURL,
	}
	if err := h.Drivers.Create(&driver); err != nil {
		h.Log.Errorf("failed to add driver to truck %d: %v", truckID, err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to add driver")
		return
	}

	http.Redirect(w, r, truckPath(truckID), http.StatusSeeOther)
}

// Edit updates a driver scoped to (truck, driver). An id pair that matches
// no row is a silent no-op, as in the system this replaces.
func (h *DriverHandler) Edit(w http.ResponseWriter, r *http.Request) {
	truckID, ok := h.authorizeTruck(w, r)
	if !ok {
		return
	}

	driverID, err := uintParam(r, "driver_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "bad_request", "Invalid driver ID format")
		return
	}

	form := DriverForm{
		Name:          r.FormValue("name"),
		Phone:         r.FormValue("phone"),
		LicenseNumber: r.FormValue("license_number"),
		PhotoURL:      defaultDriverPhotoURL, // not editable here
	}
	if err := validate.Struct(form); err != nil {
		WriteAPIError(w, http.StatusBadRequest, "validation_error", "Missing required field: name")
		return
	}

	if err := h.Drivers.UpdateScoped(truckID, driverID, form.Name, form.Phone, form.LicenseNumber); err != nil {
		h.Log.Errorf("failed to update driver %d on truck %d: %v", driverID, truckID, err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to update driver")
		return
	}

	http.Redirect(w, r, truckPath(truckID), http.StatusSeeOther)
}

// Delete removes a driver scoped to (truck, driver); silent no-op when the
// pair matches nothing.
func (h *DriverHandler) Delete(w http.ResponseWriter, r *http.Request) {
	truckID, ok := h.authorizeTruck(w, r)
	if !ok {
		return
	}

	driverID, err := uintParam(r, "driver_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "bad_request", "Invalid driver ID format")
		return
	}

	if err := h.Drivers.DeleteScoped(truckID, driverID); err != nil {
		h.Log.Errorf("failed to delete driver %d on truck %d: %v", driverID, truckID, err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to delete driver")
		return
	}

	http.Redirect(w, r, truckPath(truckID), http.StatusSeeOther)
}
