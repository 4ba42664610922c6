package database

import (
	"database/sql"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/camden-git/fleetsysbackend/models"
)

func sqlDBFor(t *testing.T, db *gorm.DB) *sql.DB {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	return sqlDB
}

func TestLatestLocation(t *testing.T) {
	db := newTestDB(t)
	sqlDB := sqlDBFor(t, db)

	// append a newer point so "latest" has something to beat
	newer := models.GpsLocation{
		TruckID:   1,
		Latitude:  40.7306,
		Longitude: -73.9352,
		Timestamp: time.Now(),
	}
	if err := db.Create(&newer).Error; err != nil {
		t.Fatalf("failed to insert gps point: %v", err)
	}

	loc, err := LatestLocation(sqlDB, 1)
	if err != nil {
		t.Fatalf("LatestLocation failed: %v", err)
	}
	if loc == nil {
		t.Fatal("expected a location for truck 1")
	}
	if loc.Latitude != 40.7306 {
		t.Errorf("latitude = %v, want the newest point", loc.Latitude)
	}
}

func TestLatestLocationNoHistory(t *testing.T) {
	db := newTestDB(t)
	sqlDB := sqlDBFor(t, db)

	truck := models.Truck{TruckNumber: "TRK-100", OwnerID: 1}
	if err := db.Create(&truck).Error; err != nil {
		t.Fatalf("failed to create truck: %v", err)
	}

	loc, err := LatestLocation(sqlDB, truck.ID)
	if err != nil {
		t.Fatalf("LatestLocation failed: %v", err)
	}
	if loc != nil {
		t.Errorf("expected nil location for a truck with no history, got %+v", loc)
	}
}

func TestTravelHistoryOrderAndLimit(t *testing.T) {
	db := newTestDB(t)
	sqlDB := sqlDBFor(t, db)

	base := time.Now()
	for i := 0; i < 5; i++ {
		point := models.GpsLocation{
			TruckID:   1,
			Latitude:  40.0 + float64(i),
			Longitude: -74.0,
			Timestamp: base.Add(time.Duration(i) * time.Second),
		}
		if err := db.Create(&point).Error; err != nil {
			t.Fatalf("failed to insert gps point %d: %v", i, err)
		}
	}

	history, err := TravelHistory(sqlDB, 1, 3)
	if err != nil {
		t.Fatalf("TravelHistory failed: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("got %d points, want the limit of 3", len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i].Timestamp.After(history[i-1].Timestamp) {
			t.Errorf("history not in newest-first order at index %d", i)
		}
	}
	if history[0].Latitude != 44.0 {
		t.Errorf("newest point latitude = %v, want 44.0", history[0].Latitude)
	}
}

func TestRecentFaceDetectionsJoinsDriverName(t *testing.T) {
	db := newTestDB(t)
	sqlDB := sqlDBFor(t, db)

	detections, err := RecentFaceDetections(sqlDB, 1, 10)
	if err != nil {
		t.Fatalf("RecentFaceDetections failed: %v", err)
	}
	if len(detections) != 1 {
		t.Fatalf("got %d detections for truck 1, want 1", len(detections))
	}
	fd := detections[0]
	if fd.DriverName == nil || *fd.DriverName != "Robert Johnson" {
		t.Errorf("driver name = %v, want Robert Johnson", fd.DriverName)
	}
	if fd.MatchResult != "Matched" {
		t.Errorf("match result = %q, want Matched", fd.MatchResult)
	}
}

func TestRecentFaceDetectionsSurvivesDriverDeletion(t *testing.T) {
	db := newTestDB(t)
	sqlDB := sqlDBFor(t, db)

	// drop the matched driver; the detection row keeps its image but loses
	// the name via the SET NULL constraint
	if err := db.Delete(&models.Driver{}, 1).Error; err != nil {
		t.Fatalf("failed to delete driver: %v", err)
	}

	detections, err := RecentFaceDetections(sqlDB, 1, 10)
	if err != nil {
		t.Fatalf("RecentFaceDetections failed: %v", err)
	}
	if len(detections) != 1 {
		t.Fatalf("got %d detections, want 1", len(detections))
	}
	if detections[0].DriverName != nil {
		t.Errorf("driver name = %q, want nil after driver deletion", *detections[0].DriverName)
	}
	if detections[0].DriverID != nil {
		t.Errorf("driver id = %d, want nil after driver deletion", *detections[0].DriverID)
	}
}

func TestUnreadAlertsForOwner(t *testing.T) {
	db := newTestDB(t)
	sqlDB := sqlDBFor(t, db)

	// user 1 owns trucks 1 and 2: one unread alert each, plus a read one
	// on truck 1 that must not show up
	alerts, err := UnreadAlertsForOwner(sqlDB, 1, 10)
	if err != nil {
		t.Fatalf("UnreadAlertsForOwner failed: %v", err)
	}
	if len(alerts) != 2 {
		t.Fatalf("got %d alerts for user 1, want 2", len(alerts))
	}
	for _, a := range alerts {
		if a.IsRead {
			t.Errorf("alert %d is read but was returned as unread", a.ID)
		}
		if a.TruckNumber != "TRK-001" && a.TruckNumber != "TRK-002" {
			t.Errorf("alert %d joined truck %q, not owned by user 1", a.ID, a.TruckNumber)
		}
	}
	// newest first
	if alerts[0].AlertType != "Unauthorized Driver" {
		t.Errorf("newest alert type = %q, want Unauthorized Driver", alerts[0].AlertType)
	}
}

func TestUnreadAlertsForOwnerLimit(t *testing.T) {
	db := newTestDB(t)
	sqlDB := sqlDBFor(t, db)

	for i := 0; i < 15; i++ {
		alert := models.Alert{
			TruckID:   1,
			AlertType: "Camera Offline",
			Message:   "synthetic alert",
			Severity:  "low",
		}
		if err := db.Create(&alert).Error; err != nil {
			t.Fatalf("failed to insert alert %d: %v", i, err)
		}
	}

	alerts, err := UnreadAlertsForOwner(sqlDB, 1, 10)
	if err != nil {
		t.Fatalf("UnreadAlertsForOwner failed: %v", err)
	}
	if len(alerts) != 10 {
		t.Errorf("got %d alerts, want the limit of 10", len(alerts))
	}
}
