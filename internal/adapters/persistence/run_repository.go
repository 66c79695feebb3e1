package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/application/simulator"
	"gorm.io/gorm"
)

// GormRunRepository persists completed simulation runs using GORM.
type GormRunRepository struct {
	db *gorm.DB
}

// NewGormRunRepository creates a new GORM run-ledger repository.
func NewGormRunRepository(db *gorm.DB) *GormRunRepository {
	return &GormRunRepository{db: db}
}

// RunRecord describes a completed simulation run, ready to be saved
// alongside the per-ship summaries it produced.
type RunRecord struct {
	ID              string
	NetworkPath     string
	ShipCount       int
	TimeStepSeconds float64
	ElapsedSimS     float64
	StartedAt       time.Time
	FinishedAt      time.Time
	Summaries       []simulator.ShipSummary
}

// SaveRun writes a run and its ship summaries in a single transaction.
func (r *GormRunRepository) SaveRun(ctx context.Context, rec RunRecord) error {
	runModel := RunModel{
		ID:                rec.ID,
		NetworkPath:       rec.NetworkPath,
		ShipCount:         rec.ShipCount,
		TimeStepSeconds:   rec.TimeStepSeconds,
		ElapsedSimSeconds: rec.ElapsedSimS,
		StartedAt:         rec.StartedAt,
		FinishedAt:        rec.FinishedAt,
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&runModel).Error; err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		for _, sum := range rec.Summaries {
			fuelJSON, err := json.Marshal(sum.FuelLitersByType)
			if err != nil {
				return fmt.Errorf("failed to marshal fuel breakdown for ship %s: %w", sum.ShipID, err)
			}
			model := ShipSummaryModel{
				RunID:             rec.ID,
				ShipID:            sum.ShipID,
				TotalDistanceM:    sum.TotalDistanceM,
				TripTimeS:         sum.TripTimeS,
				AverageSpeedMPS:   sum.AverageSpeedMPS,
				FuelLitersByType:  string(fuelJSON),
				CO2Kg:             sum.CO2Kg,
				SO2Kg:             sum.SO2Kg,
				EnergyPerTonKmKWh: sum.EnergyPerTonKmKWh,
			}
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to save ship summary for %s: %w", sum.ShipID, err)
			}
		}
		return nil
	})
}

// ShipSummariesForRun retrieves every ship summary recorded for a run.
func (r *GormRunRepository) ShipSummariesForRun(ctx context.Context, runID string) ([]simulator.ShipSummary, error) {
	var models []ShipSummaryModel
	result := r.db.WithContext(ctx).Where("run_id = ?", runID).Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list ship summaries: %w", result.Error)
	}

	summaries := make([]simulator.ShipSummary, 0, len(models))
	for _, model := range models {
		var fuel map[string]float64
		if model.FuelLitersByType != "" {
			if err := json.Unmarshal([]byte(model.FuelLitersByType), &fuel); err != nil {
				return nil, fmt.Errorf("failed to unmarshal fuel breakdown for ship %s: %w", model.ShipID, err)
			}
		}
		summaries = append(summaries, simulator.ShipSummary{
			ShipID:            model.ShipID,
			TotalDistanceM:    model.TotalDistanceM,
			TripTimeS:         model.TripTimeS,
			AverageSpeedMPS:   model.AverageSpeedMPS,
			FuelLitersByType:  fuel,
			CO2Kg:             model.CO2Kg,
			SO2Kg:             model.SO2Kg,
			EnergyPerTonKmKWh: model.EnergyPerTonKmKWh,
		})
	}
	return summaries, nil
}
