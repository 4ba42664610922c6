package handlers

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/camden-git/fleetsysbackend/database"
	"github.com/camden-git/fleetsysbackend/permissions"
	"github.com/camden-git/fleetsysbackend/repository"
)

const (
	travelHistoryLimit = 50
	faceDetectionLimit = 10
)

type TruckHandler struct {
	Guard      *permissions.TruckGuard
	Drivers    repository.DriverRepository
	Recordings repository.VideoRecordingRepository
	Alerts     repository.AlertRepository
	DB         database.Querier
	Log        *logrus.Logger
}

// Detail returns the full aggregate view of one truck: drivers, current
// position, travel history, recent face detections, recordings and alerts.
func (h *TruckHandler) Detail(w http.ResponseWriter, r *http.Request) {
	session := SessionFromContext(r)
	if session == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	truckID, err := uintParam(r, "truck_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "bad_request", "Invalid truck ID format")
		return
	}

	truck, err := h.Guard.RequireTruckAccess(session, truckID)
	if err != nil {
		if errors.Is(err, permissions.ErrAccessDenied) {
			// truck not found or not owned; back to the dashboard
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		h.Log.Errorf("failed to authorize truck %d: %v", truckID, err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to load truck")
		return
	}

	drivers, err := h.Drivers.ListByTruck(truckID)
	if err != nil {
		h.Log.Errorf("failed to list drivers for truck %d: %v", truckID, err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to load truck")
		return
	}

	currentLocation, err := database.LatestLocation(h.DB, truckID)
	if err != nil {
		h.Log.Errorf("failed to fetch current location for truck %d: %v", truckID, err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to load truck")
		return
	}

	travelHistory, err := database.TravelHistory(h.DB, truckID, travelHistoryLimit)
	if err != nil {
		h.Log.Errorf("failed to fetch travel history for truck %d: %v", truckID, err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to load truck")
		return
	}

	faceDetections, err := database.RecentFaceDetections(h.DB, truckID, faceDetectionLimit)
	if err != nil {
		h.Log.Errorf("failed to fetch face detections for truck %d: %v", truckID, err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to load truck")
		return
	}

	recordings, err := h.Recordings.ListByTruck(truckID)
	if err != nil {
		h.Log.Errorf("failed to list recordings for truck %d: %v", truckID, err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to load truck")
		return
	}

	alerts, err := h.Alerts.ListByTruck(truckID)
	if err != nil {
		h.Log.Errorf("failed to list alerts for truck %d: %v", truckID, err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to load truck")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"truck":            truck,
		"drivers":          drivers,
		"current_location": currentLocation,
		"travel_history":   travelHistory,
		"face_detections":  faceDetections,
		"recordings":       recordings,
		"alerts":           alerts,
	})
}
