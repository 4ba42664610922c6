package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/camden-git/fleetsysbackend/models"
	"github.com/sirupsen/logrus"
)

// Querier is the subset of *sql.DB used by the telemetry query layer, so
// the same functions work inside transactions.
type Querier interface {
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// InitDB initializes and returns a GORM database instance backed by SQLite.
func InitDB(dataSourceName string, log *logrus.Logger) (*gorm.DB, error) {
	gormLogger := logger.New(
		log,
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	// pragmas go through the DSN so every pooled connection gets them;
	// PRAGMA statements only affect the connection they run on
	if !strings.Contains(dataSourceName, "_foreign_keys") {
		sep := "?"
		if strings.Contains(dataSourceName, "?") {
			sep = "&"
		}
		dataSourceName += sep + "_foreign_keys=on&_journal_mode=WAL"
	}

	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database using GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB from GORM: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Infof("database initialized at %s", dataSourceName)
	return db, nil
}

// AutoMigrateModels migrates the full schema. Called after InitDB and after
// every Reset.
func AutoMigrateModels(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Truck{},
		&models.Driver{},
		&models.GpsLocation{},
		&models.FaceDetection{},
		&models.Alert{},
		&models.VideoRecording{},
	)
	if err != nil {
		return fmt.Errorf("GORM AutoMigrate failed: %w", err)
	}
	return nil
}

// Reset drops all fleet tables (children before parents) and recreates them.
// Destructive: every row is lost.
func Reset(db *gorm.DB) error {
	err := db.Migrator().DropTable(
		&models.VideoRecording{},
		&models.Alert{},
		&models.FaceDetection{},
		&models.GpsLocation{},
		&models.Driver{},
		&models.Truck{},
		&models.User{},
	)
	if err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	return AutoMigrateModels(db)
}
