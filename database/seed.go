package database

import (
	"fmt"
	"time"

	"github.com/camden-git/fleetsysbackend/models"
	"gorm.io/gorm"
)

// Seed populates a freshly reset schema with the deterministic fixture set:
// 4 users, 6 trucks, 7 drivers, 6 GPS points, 5 alerts, 4 face detections
// and 4 recordings. Creation timestamps are staggered so "newest first"
// orderings are well defined.
func Seed(db *gorm.DB) error {
	base := time.Now().Add(-24 * time.Hour).Truncate(time.Second)

	users := []struct {
		username, email, fullName string
	}{
		{"john_doe", "john@trucking.com", "John Doe"},
		{"jane_smith", "jane@trucking.com", "Jane Smith"},
		{"mike_wilson", "mike@trucking.com", "Mike Wilson"},
		{"sarah_jones", "sarah@trucking.com", "Sarah Jones"},
	}
	for i, u := range users {
		user := models.User{
			ID:        uint(i + 1),
			Username:  u.username,
			Email:     u.email,
			FullName:  u.fullName,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := user.SetPassword("password123"); err != nil {
			return fmt.Errorf("failed to hash seed password for %s: %w", u.username, err)
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.username, err)
		}
	}

	trucks := []struct {
		number, plate, model string
		ownerID              uint
	}{
		{"TRK-001", "ABC-1234", "Volvo FH16", 1},
		{"TRK-002", "XYZ-5678", "Scania R450", 1},
		{"TRK-003", "DEF-9012", "Mercedes Actros", 2},
		{"TRK-004", "GHI-3456", "MAN TGX", 2},
		{"TRK-005", "JKL-7890", "DAF XF", 3},
		{"TRK-006", "MNO-2345", "Iveco Stralis", 4},
	}
	for i, t := range trucks {
		truck := models.Truck{
			ID:           uint(i + 1),
			TruckNumber:  t.number,
			OwnerID:      t.ownerID,
			LicensePlate: t.plate,
			Model:        t.model,
			Status:       "active",
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&truck).Error; err != nil {
			return fmt.Errorf("failed to seed truck %s: %w", t.number, err)
		}
	}

	drivers := []struct {
		truckID              uint
		name, phone, license string
		photoURL             string
	}{
		{1, "Robert Johnson", "+1-555-0101", "DL-12345", "/static/images/driver1.jpg"},
		{1, "Michael Brown", "+1-555-0102", "DL-23456", "/static/images/driver2.jpg"},
		{2, "David Garcia", "+1-555-0103", "DL-34567", "/static/images/driver3.jpg"},
		{3, "James Martinez", "+1-555-0104", "DL-45678", "/static/images/driver4.jpg"},
		{4, "William Rodriguez", "+1-555-0105", "DL-56789", "/static/images/driver5.jpg"},
		{5, "Thomas Davis", "+1-555-0106", "DL-67890", "/static/images/driver6.jpg"},
		{6, "Charles Miller", "+1-555-0107", "DL-78901", "/static/images/driver7.jpg"},
	}
	for i, d := range drivers {
		driver := models.Driver{
			ID:            uint(i + 1),
			TruckID:       d.truckID,
			Name:          d.name,
			Phone:         d.phone,
			LicenseNumber: d.license,
			PhotoURL:      d.photoURL,
			CreatedAt:     base.Add(time.Duration(i) * time.Second),
		}
		if err := db.Create(&driver).Error; err != nil {
			return fmt.Errorf("failed to seed driver %s: %w", d.name, err)
		}
	}

	gpsPoints := []struct {
		truckID  uint
		lat, lon float64
	}{
		{1, 40.7128, -74.0060},
		{2, 34.0522, -118.2437},
		{3, 41.8781, -87.6298},
		{4, 29.7604, -95.3698},
		{5, 33.4484, -112.0740},
		{6, 39.7392, -104.9903},
	}
	for i, g := range gpsPoints {
		point := models.GpsLocation{
			ID:        uint(i + 1),
			TruckID:   g.truckID,
			Latitude:  g.lat,
			Longitude: g.lon,
			Timestamp: base.Add(time.Duration(i) * time.Second),
		}
		if err := db.Create(&point).Error; err != nil {
			return fmt.Errorf("failed to seed gps point for truck %d: %w", g.truckID, err)
		}
	}

	alerts := []struct {
		truckID            uint
		alertType, message string
		severity           string
		isRead             bool
	}{
		{1, "Alcohol Detection", "Alcohol detected in cabin of TRK-001", "high", false},
		{2, "Unauthorized Driver", "Face detection detected unauthorized person driving TRK-002", "high", false},
		{3, "Camera Offline", "Camera 2 in TRK-003 is not receiving signal", "medium", false},
		{1, "Speed Alert", "TRK-001 exceeded speed limit on Highway 101", "medium", true},
		{4, "Camera Offline", "Camera 1 in TRK-004 connection lost", "medium", false},
	}
	for i, a := range alerts {
		alert := models.Alert{
			ID:        uint(i + 1),
			TruckID:   a.truckID,
			AlertType: a.alertType,
			Message:   a.message,
			Severity:  a.severity,
			IsRead:    a.isRead,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&alert).Error; err != nil {
			return fmt.Errorf("failed to seed alert %q: %w", a.alertType, err)
		}
	}

	detections := []struct {
		truckID    uint
		driverID   uint
		imageURL   string
		confidence float64
		match      string
	}{
		{1, 1, "/static/images/face_detect1.jpg", 95.5, "Matched"},
		{2, 3, "/static/images/face_detect2.jpg", 88.2, "Matched"},
		{3, 4, "/static/images/face_detect3.jpg", 45.1, "No Match"},
		{4, 5, "/static/images/face_detect4.jpg", 92.7, "Matched"},
	}
	for i, fd := range detections {
		driverID := fd.driverID
		detection := models.FaceDetection{
			ID:          uint(i + 1),
			TruckID:     fd.truckID,
			DriverID:    &driverID,
			ImageURL:    fd.imageURL,
			Confidence:  fd.confidence,
			MatchResult: fd.match,
			DetectedAt:  base.Add(time.Duration(i) * time.Second),
		}
		if err := db.Create(&detection).Error; err != nil {
			return fmt.Errorf("failed to seed face detection for truck %d: %w", fd.truckID, err)
		}
	}

	recordings := []struct {
		truckID  uint
		camera   int
		fileURL  string
		fileSize int64
		duration int
	}{
		{1, 1, "/static/videos/truck1_cam1_rec1.mp4", 524288000, 3600},
		{1, 2, "/static/videos/truck1_cam2_rec1.mp4", 498073600, 3600},
		{2, 1, "/static/videos/truck2_cam1_rec1.mp4", 536870912, 3600},
		{3, 3, "/static/videos/truck3_cam3_rec1.mp4", 471859200, 3600},
	}
	for i, rec := range recordings {
		recording := models.VideoRecording{
			ID:           uint(i + 1),
			TruckID:      rec.truckID,
			CameraNumber: rec.camera,
			FileURL:      rec.fileURL,
			FileSize:     rec.fileSize,
			Duration:     rec.duration,
			Status:       models.RecordingStatusSaved,
			RecordedAt:   base.Add(time.Duration(i) * time.Second),
		}
		if err := db.Create(&recording).Error; err != nil {
			return fmt.Errorf("failed to seed recording %s: %w", rec.fileURL, err)
		}
	}

	return nil
}
