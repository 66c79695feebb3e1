package txtsink

import (
	"bytes"
	"testing"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/application/simulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSummaryIncludesAllFields(t *testing.T) {
	var buf bytes.Buffer
	sink := New(&buf)

	sink.WriteSummary(simulator.ShipSummary{
		ShipID:            "s1",
		TotalDistanceM:    1000,
		TripTimeS:         500,
		AverageSpeedMPS:   2.0,
		FuelLitersByType:  map[string]float64{"Diesel": 120.5},
		CO2Kg:             375.2,
		SO2Kg:             0.4,
		EnergyPerTonKmKWh: 0.012,
	})
	require.NoError(t, sink.Flush())

	out := buf.String()
	assert.Contains(t, out, "Ship: s1")
	assert.Contains(t, out, "Diesel")
	assert.Contains(t, out, "CO2 mass")
}
