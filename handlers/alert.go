package handlers

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/camden-git/fleetsysbackend/permissions"
	"github.com/camden-git/fleetsysbackend/repository"
)

type AlertHandler struct {
	Guard  *permissions.TruckGuard
	Alerts repository.AlertRepository
	Log    *logrus.Logger
}

// MarkRead flags an alert as read. The alert's truck must be owned by the
// caller; marking an already-read alert again is a no-op.
func (h *AlertHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	session := SessionFromContext(r)
	if session == nil {
		WriteAPIError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	alertID, err := uintParam(r, "alert_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, "bad_request", "Invalid alert ID format")
		return
	}

	alert, err := h.Alerts.GetByID(alertID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// a missing alert looks the same as someone else's alert
			WriteAPIError(w, http.StatusForbidden, "forbidden", "Access denied")
			return
		}
		h.Log.Errorf("failed to fetch alert %d: %v", alertID, err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to mark alert read")
		return
	}

	if _, err := h.Guard.RequireTruckAccess(session, alert.TruckID); err != nil {
		if errors.Is(err, permissions.ErrAccessDenied) || errors.Is(err, permissions.ErrUnauthenticated) {
			WriteAPIError(w, http.StatusForbidden, "forbidden", "Access denied")
			return
		}
		h.Log.Errorf("failed to authorize alert %d: %v", alertID, err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to mark alert read")
		return
	}

	if err := h.Alerts.MarkRead(alertID); err != nil {
		h.Log.Errorf("failed to mark alert %d read: %v", alertID, err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to mark alert read")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Alert marked as read",
	})
}
