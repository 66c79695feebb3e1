// Package persistence stores completed simulation runs and their
// per-ship summaries in a local sqlite database, so a run's results can
// be queried after the process that produced them has exited.
package persistence

import (
	"time"
)

// RunModel represents the runs table: one row per simulator.Run call.
type RunModel struct {
	ID                string    `gorm:"column:id;primaryKey"`
	NetworkPath        string    `gorm:"column:network_path;not null"`
	ShipCount          int       `gorm:"column:ship_count;not null"`
	TimeStepSeconds    float64   `gorm:"column:time_step_seconds;not null"`
	ElapsedSimSeconds  float64   `gorm:"column:elapsed_sim_seconds;not null"`
	StartedAt          time.Time `gorm:"column:started_at;not null"`
	FinishedAt         time.Time `gorm:"column:finished_at;not null"`
}

func (RunModel) TableName() string {
	return "runs"
}

// ShipSummaryModel represents the ship_summaries table: one row per ship
// per completed run, mirroring simulator.ShipSummary.
type ShipSummaryModel struct {
	ID                int     `gorm:"column:id;primaryKey;autoIncrement"`
	RunID             string  `gorm:"column:run_id;not null;index:idx_ship_summaries_run"`
	Run               *RunModel `gorm:"foreignKey:RunID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ShipID            string  `gorm:"column:ship_id;not null"`
	TotalDistanceM    float64 `gorm:"column:total_distance_m;not null"`
	TripTimeS         float64 `gorm:"column:trip_time_s;not null"`
	AverageSpeedMPS   float64 `gorm:"column:average_speed_mps;not null"`
	FuelLitersByType  string  `gorm:"column:fuel_liters_by_type;type:text"` // JSON-encoded map[string]float64
	CO2Kg             float64 `gorm:"column:co2_kg;not null"`
	SO2Kg             float64 `gorm:"column:so2_kg;not null"`
	EnergyPerTonKmKWh float64 `gorm:"column:energy_per_ton_km_kwh;not null"`
}

func (ShipSummaryModel) TableName() string {
	return "ship_summaries"
}
