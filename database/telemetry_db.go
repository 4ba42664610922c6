package database

import (
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/camden-git/fleetsysbackend/models"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// FaceDetectionWithDriver is a face detection row joined with the name of
// the matched driver, when one is still assigned.
type FaceDetectionWithDriver struct {
	models.FaceDetection
	DriverName *string `json:"driver_name,omitempty"`
}

// AlertWithTruck is an alert row joined with the truck number it belongs
// to, for rendering alert lists outside a single-truck context.
type AlertWithTruck struct {
	models.Alert
	TruckNumber string `json:"truck_number"`
}

// LatestLocation returns the most recent GPS point for a truck, or nil when
// the truck has no position history yet.
func LatestLocation(db Querier, truckID uint) (*models.GpsLocation, error) {
	queryBuilder := qb.Select("id", "truck_id", "latitude", "longitude", "timestamp").
		From("gps_locations").
		Where(sq.Eq{"truck_id": truckID}).
		OrderBy("timestamp DESC").
		Limit(1)

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL for LatestLocation: %w", err)
	}

	var loc models.GpsLocation
	err = db.QueryRow(sqlStr, args...).Scan(&loc.ID, &loc.TruckID, &loc.Latitude, &loc.Longitude, &loc.Timestamp)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query latest location for truck %d: %w", truckID, err)
	}
	return &loc, nil
}

// TravelHistory returns up to limit GPS points for a truck, newest first.
func TravelHistory(db Querier, truckID uint, limit uint64) ([]models.GpsLocation, error) {
	queryBuilder := qb.Select("id", "truck_id", "latitude", "longitude", "timestamp").
		From("gps_locations").
		Where(sq.Eq{"truck_id": truckID}).
		OrderBy("timestamp DESC").
		Limit(limit)

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL for TravelHistory: %w", err)
	}

	rows, err := db.Query(sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute TravelHistory query for truck %d: %w", truckID, err)
	}
	defer rows.Close()

	history := []models.GpsLocation{}
	for rows.Next() {
		var loc models.GpsLocation
		if err := rows.Scan(&loc.ID, &loc.TruckID, &loc.Latitude, &loc.Longitude, &loc.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan gps location row: %w", err)
		}
		history = append(history, loc)
	}
	return history, rows.Err()
}

// RecentFaceDetections returns up to limit face detections for a truck,
// newest first, each joined with the matched driver's name when present.
func RecentFaceDetections(db Querier, truckID uint, limit uint64) ([]FaceDetectionWithDriver, error) {
	queryBuilder := qb.Select(
		"fd.id", "fd.truck_id", "fd.driver_id", "fd.image_url",
		"fd.confidence", "fd.match_result", "fd.detected_at", "d.name").
		From("face_detections fd").
		LeftJoin("drivers d ON fd.driver_id = d.id").
		Where(sq.Eq{"fd.truck_id": truckID}).
		OrderBy("fd.detected_at DESC").
		Limit(limit)

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL for RecentFaceDetections: %w", err)
	}

	rows, err := db.Query(sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute RecentFaceDetections query for truck %d: %w", truckID, err)
	}
	defer rows.Close()

	detections := []FaceDetectionWithDriver{}
	for rows.Next() {
		fd, err := scanFaceDetectionRow(rows)
		if err != nil {
			return nil, err
		}
		detections = append(detections, fd)
	}
	return detections, rows.Err()
}

func scanFaceDetectionRow(scanner interface {
	Scan(dest ...interface{}) error
}) (FaceDetectionWithDriver, error) {
	var fd FaceDetectionWithDriver
	var nullableDriverID sql.NullInt64
	var nullableDriverName sql.NullString
	var detectedAt time.Time

	err := scanner.Scan(
		&fd.ID, &fd.TruckID, &nullableDriverID, &fd.ImageURL,
		&fd.Confidence, &fd.MatchResult, &detectedAt, &nullableDriverName,
	)
	if err != nil {
		return FaceDetectionWithDriver{}, fmt.Errorf("failed to scan face detection row: %w", err)
	}

	fd.DetectedAt = detectedAt
	if nullableDriverID.Valid {
		id := uint(nullableDriverID.Int64)
		fd.DriverID = &id
	}
	if nullableDriverName.Valid {
		fd.DriverName = &nullableDriverName.String
	}
	return fd, nil
}

// UnreadAlertsForOwner returns up to limit unread alerts across all trucks
// owned by the given user, newest first.
func UnreadAlertsForOwner(db Querier, ownerID uint, limit uint64) ([]AlertWithTruck, error) {
	queryBuilder := qb.Select(
		"a.id", "a.truck_id", "a.alert_type", "a.message",
		"a.severity", "a.is_read", "a.created_at", "t.truck_number").
		From("alerts a").
		Join("trucks t ON a.truck_id = t.id").
		Where(sq.Eq{"t.owner_id": ownerID, "a.is_read": false}).
		OrderBy("a.created_at DESC").
		Limit(limit)

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL for UnreadAlertsForOwner: %w", err)
	}

	rows, err := db.Query(sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute UnreadAlertsForOwner query for user %d: %w", ownerID, err)
	}
	defer rows.Close()

	alerts := []AlertWithTruck{}
	for rows.Next() {
		var a AlertWithTruck
		err := rows.Scan(
			&a.ID, &a.TruckID, &a.AlertType, &a.Message,
			&a.Severity, &a.IsRead, &a.CreatedAt, &a.TruckNumber,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}
