package propulsion

import (
	"testing"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/energy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoEngines(t *testing.T) []*Engine {
	t.Helper()
	source1 := energy.NewTank(energy.FuelDiesel, 100000, 100, 0)
	source2 := energy.NewTank(energy.FuelDiesel, 100000, 100, 0)
	e1, err := NewEngine("e1", sampleCurve(), nil, [4]float64{500, 1500, 3500, 5000}, 12.0, source1)
	require.NoError(t, err)
	e2, err := NewEngine("e2", sampleCurve(), nil, [4]float64{500, 1500, 3500, 5000}, 12.0, source2)
	require.NoError(t, err)
	return []*Engine{e1, e2}
}

func TestNewGearboxRequiresAtLeastOneEngine(t *testing.T) {
	_, err := NewGearbox(nil, 4.0, 0.97)
	assert.Error(t, err)
}

func TestNewGearboxDefaultsEfficiencyWhenNonPositive(t *testing.T) {
	g, err := NewGearbox(twoEngines(t), 4.0, 0)
	require.NoError(t, err)
	for _, e := range g.engines {
		e.UpdateCurrentStep(10.0)
	}
	assert.Greater(t, g.OutputPowerKW(), 0.0)
}

func TestOutputRPMIsPowerWeightedAverageReducedByGearRatio(t *testing.T) {
	engines := twoEngines(t)
	g, err := NewGearbox(engines, 2.0, 0.97)
	require.NoError(t, err)
	for _, e := range engines {
		e.UpdateCurrentStep(10.0)
	}
	assert.Greater(t, g.OutputRPM(), 0.0)
}

func TestSetEngineRPMRejectsTargetOutsideRange(t *testing.T) {
	engines := twoEngines(t)
	g, err := NewGearbox(engines, 1.0, 0.97)
	require.NoError(t, err)
	err = g.SetEngineRPM(100000)
	assert.Error(t, err)
}

func TestSetEngineRPMWithinRangeSucceeds(t *testing.T) {
	engines := twoEngines(t)
	g, err := NewGearbox(engines, 1.0, 0.97)
	require.NoError(t, err)
	err = g.SetEngineRPM(400)
	assert.NoError(t, err)
}
