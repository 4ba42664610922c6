package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/camden-git/fleetsysbackend/permissions"
)

type CameraHandler struct {
	Guard *permissions.TruckGuard
	Log   *logrus.Logger
}

// Feed returns a placeholder stream descriptor for a truck camera. There is
// no real media pipeline behind it.
func (h *CameraHandler) Feed(w http.ResponseWriter, r *http.Request) {
	session := SessionFromContext(r)

	truckID, err := uintParam(r, "truck_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "bad_request", "Invalid truck ID format")
		return
	}
	cameraNumber, err := uintParam(r, "camera_number")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "bad_request", "Invalid camera number format")
		return
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
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"truck_id":      truckID,
		"camera_number": cameraNumber,
		"status":        "live",
		"stream_url":    fmt.Sprintf("/static/videos/live_feed_cam%d.mp4", cameraNumber),
		"message":       "Simulated live camera feed",
	})
}
