// Package database opens the sqlite connection the run-ledger persists
// through (the trajectory and summary sinks write plain files instead),
// using the same gorm dialector pattern as the rest of this codebase's
// adapters.
package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/adapters/persistence"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/infrastructure/config"
)

// NewConnection opens a sqlite connection per cfg.
func NewConnection(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	if cfg.Type != "sqlite" {
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}

	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying db: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Pool.MaxOpen)
	sqlDB.SetMaxIdleConns(cfg.Pool.MaxIdle)
	sqlDB.SetConnMaxLifetime(cfg.Pool.MaxLifetime)

	return db, nil
}

// NewTestConnection opens an in-memory sqlite database for tests.
func NewTestConnection() (*gorm.DB, error) {
	cfg := &config.DatabaseConfig{
		Type: "sqlite",
		Path: ":memory:",
	}

	db, err := NewConnection(cfg)
	if err != nil {
		return nil, err
	}

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate test database: %w", err)
	}

	return db, nil
}

// AutoMigrate runs auto-migration for the run-ledger models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&persistence.RunModel{},
		&persistence.ShipSummaryModel{},
	)
}

// Close closes the database connection.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
