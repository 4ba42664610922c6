package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/camden-git/fleetsysbackend/models"
	"github.com/camden-git/fleetsysbackend/permissions"
	"github.com/camden-git/fleetsysbackend/repository"
)

// Placeholder size/duration written when a recording is stopped. No real
// capture pipeline exists to measure.
const (
	savedFileSizePlaceholder = int64(524288000)
	savedDurationPlaceholder = 3600
)

type RecordingHandler struct {
	Guard      *permissions.TruckGuard
	Recordings repository.VideoRecordingRepository
	Log        *logrus.Logger
}

func (h *RecordingHandler) authorizeTruck(w http.ResponseWriter, r *http.Request) (uint, bool) {
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

// Start inserts a recording in the "recording" state with a deterministic
// file URL naming the truck, camera and start time.
func (h *RecordingHandler) Start(w http.ResponseWriter, r *http.Request) {
	truckID, ok := h.authorizeTruck(w, r)
	if !ok {
		return
	}

	cameraNumber := 1
	if raw := r.FormValue("camera_number"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			WriteAPIError(w, http.StatusBadRequest, "bad_request", "Invalid camera number")
			return
		}
		cameraNumber = parsed
	}

	fileURL := fmt.Sprintf("/static/videos/truck%d_cam%d_rec_%s.mp4",
		truckID, cameraNumber, time.Now().Format("20060102_150405"))

	recording := models.VideoRecording{
		TruckID:      truckID,
		CameraNumber: cameraNumber,
		FileURL:      fileURL,
		Status:       models.RecordingStatusRecording,
	}
	if err := h.Recordings.Create(&recording); err != nil {
		h.Log.Errorf("failed to start recording on truck %d: %v", truckID, err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to start recording")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Recording started",
		"file_url": fileURL,
	})
}

// Stop moves a recording to the "saved" state with placeholder size and
// duration. Stopping an already saved recording rewrites the same values;
// the status never goes back.
func (h *RecordingHandler) Stop(w http.ResponseWriter, r *http.Request) {
	truckID, ok := h.authorizeTruck(w, r)
	if !ok {
		return
	}

	recordingID, err := uintParam(r, "recording_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "bad_request", "Invalid recording ID format")
		return
	}

	err = h.Recordings.MarkSaved(truckID, recordingID, savedFileSizePlaceholder, savedDurationPlaceholder)
	if err != nil {
		h.Log.Errorf("failed to stop recording %d on truck %d: %v", recordingID, truckID, err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to stop recording")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Recording stopped and saved",
	})
}

// Delete removes a recording scoped to (truck, recording) and sends the
// client back to the truck view.
func (h *RecordingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	truckID, ok := h.authorizeTruck(w, r)
	if !ok {
		return
	}

	recordingID, err := uintParam(r, "recording_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "bad_request", "Invalid recording ID format")
		return
	}

	if err := h.Recordings.DeleteScoped(truckID, recordingID); err != nil {
		h.Log.Errorf("failed to delete recording %d on truck %d: %v", recordingID, truckID, err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to delete recording")
		return
	}

	http.Redirect(w, r, truckPath(truckID), http.StatusSeeOther)
}
