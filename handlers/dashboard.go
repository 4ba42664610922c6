package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/camden-git/fleetsysbackend/database"
	"github.com/camden-git/fleetsysbackend/repository"
)

// dashboardAlertLimit caps the unread-alert feed on the dashboard.
const dashboardAlertLimit = 10

type DashboardHandler struct {
	Trucks repository.TruckRepository
	DB     database.Querier
	Log    *logrus.Logger
}

// Dashboard returns the session user's trucks (newest first) together with
// their most recent unread alerts.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	session := SessionFromContext(r)
	if session == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	trucks, err := h.Trucks.ListByOwner(session.UserID)
	if err != nil {
		h.Log.Errorf("failed to list trucks for user %d: %v", session.UserID, err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to load dashboard")
		return
	}

	alerts, err := database.UnreadAlertsForOwner(h.DB, session.UserID, dashboardAlertLimit)
	if err != nil {
		h.Log.Errorf("failed to list unread alerts for user %d: %v", session.UserID, err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to load dashboard")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":   session,
		"trucks": trucks,
		"alerts": alerts,
	})
}
