package config

import "time"

// DatabaseConfig holds the run-ledger database connection configuration.
// The simulator persists one row per completed ship run (distance, trip
// time, fuel/emissions totals) to a local sqlite file; no server-backed
// database is needed.
type DatabaseConfig struct {
	// Connection type: only "sqlite" is supported.
	Type string `mapstructure:"type" validate:"required,oneof=sqlite"`

	// SQLite file path.
	Path string `mapstructure:"path" validate:"required"`

	// Connection pool settings
	Pool PoolConfig `mapstructure:"pool"`
}

// PoolConfig holds connection pool configuration
type PoolConfig struct {
	MaxOpen     int           `mapstructure:"max_open" validate:"min=1"`
	MaxIdle     int           `mapstructure:"max_idle" validate:"min=1"`
	MaxLifetime time.Duration `mapstructure:"max_lifetime"`
}
