package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/adapters/persistence"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/application/simulator"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&persistence.RunModel{}, &persistence.ShipSummaryModel{}))
	return db
}

func TestGormRunRepository_SaveAndRetrieve(t *testing.T) {
	db := newTestDB(t)
	repo := persistence.NewGormRunRepository(db)

	rec := persistence.RunRecord{
		ID:              "run-1",
		NetworkPath:     "testdata/network.txt",
		ShipCount:       2,
		TimeStepSeconds: 1.0,
		ElapsedSimS:     3600,
		StartedAt:       time.Unix(0, 0).UTC(),
		FinishedAt:      time.Unix(3600, 0).UTC(),
		Summaries: []simulator.ShipSummary{
			{
				ShipID:            "ship-a",
				TotalDistanceM:    10000,
				TripTimeS:         3500,
				AverageSpeedMPS:   2.86,
				FuelLitersByType:  map[string]float64{"HFO": 120.5},
				CO2Kg:             380.2,
				SO2Kg:             2.1,
				EnergyPerTonKmKWh: 0.045,
			},
			{
				ShipID:          "ship-b",
				TotalDistanceM:  8000,
				TripTimeS:       3600,
				AverageSpeedMPS: 2.22,
			},
		},
	}

	require.NoError(t, repo.SaveRun(context.Background(), rec))

	summaries, err := repo.ShipSummariesForRun(context.Background(), "run-1")
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byID := map[string]simulator.ShipSummary{}
	for _, s := range summaries {
		byID[s.ShipID] = s
	}

	assert.Equal(t, 10000.0, byID["ship-a"].TotalDistanceM)
	assert.Equal(t, 380.2, byID["ship-a"].CO2Kg)
	assert.Equal(t, 120.5, byID["ship-a"].FuelLitersByType["HFO"])
	assert.Equal(t, 8000.0, byID["ship-b"].TotalDistanceM)
}

func TestGormRunRepository_UnknownRunReturnsEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := persistence.NewGormRunRepository(db)

	summaries, err := repo.ShipSummariesForRun(context.Background(), "does-not-exist")
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
