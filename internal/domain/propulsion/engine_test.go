package propulsion

import (
	"testing"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/energy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCurve() []Properties {
	return []Properties{
		{BrakePowerKW: 0, RPM: 0, Efficiency: 0.30},
		{BrakePowerKW: 2000, RPM: 300, Efficiency: 0.40},
		{BrakePowerKW: 5000, RPM: 500, Efficiency: 0.45},
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	source := energy.NewTank(energy.FuelDiesel, 100000, 100, 0)
	e, err := NewEngine("main-1", sampleCurve(), nil, [4]float64{500, 1500, 3500, 5000}, 12.0, source)
	require.NoError(t, err)
	return e
}

func TestNewEngineRequiresAtLeastOneCurve(t *testing.T) {
	source := energy.NewTank(energy.FuelDiesel, 1000, 100, 0)
	_, err := NewEngine("x", nil, nil, [4]float64{}, 10, source)
	assert.Error(t, err)
}

func TestEnginePropertiesAtPowerInterpolates(t *testing.T) {
	p := enginePropertiesAtPower(sampleCurve(), 3500)
	assert.InDelta(t, 400, p.RPM, 1e-6)
	assert.InDelta(t, 0.425, p.Efficiency, 1e-6)
}

func TestEnginePropertiesAtPowerClampsToEndpoints(t *testing.T) {
	below := enginePropertiesAtPower(sampleCurve(), -100)
	above := enginePropertiesAtPower(sampleCurve(), 100000)
	assert.Equal(t, 0.0, below.RPM)
	assert.Equal(t, 500.0, above.RPM)
}

func TestUpdateCurrentStepProducesPositivePowerAtCruise(t *testing.T) {
	e := newTestEngine(t)
	e.UpdateCurrentStep(10.0)
	assert.Greater(t, e.OutputPowerKW(), 0.0)
	assert.Greater(t, e.RPM(), 0.0)
}

func TestUpdateCurrentStepWhenOffProducesNoPower(t *testing.T) {
	e := newTestEngine(t)
	e.Disable()
	e.UpdateCurrentStep(10.0)
	assert.Equal(t, 0.0, e.OutputPowerKW())
	assert.Equal(t, 0.0, e.RPM())
}

func TestRequestHigherAndLowerPowerZoneStepping(t *testing.T) {
	e := newTestEngine(t)
	assert.True(t, e.RequestHigherPower())
	assert.True(t, e.RequestHigherPower())
	assert.True(t, e.RequestHigherPower())
	assert.False(t, e.RequestHigherPower()) // already at MCR

	assert.True(t, e.RequestLowerPower())
	assert.True(t, e.RequestLowerPower())
	assert.True(t, e.RequestLowerPower())
	assert.False(t, e.RequestLowerPower()) // already at Low
}

func TestConsumeDebitsEnergySource(t *testing.T) {
	e := newTestEngine(t)
	e.UpdateCurrentStep(10.0)
	data := e.Consume(60)
	assert.True(t, data.Supplied)
	assert.Greater(t, data.Fuel.VolumeLiters, 0.0)
}

func TestConsumeTurnsEngineOffWhenUnderSupplied(t *testing.T) {
	source := energy.NewTank(energy.FuelDiesel, 1, 100, 0)
	e, err := NewEngine("starved", sampleCurve(), nil, [4]float64{500, 1500, 3500, 5000}, 12.0, source)
	require.NoError(t, err)
	e.UpdateCurrentStep(10.0)
	e.Consume(3600 * 24)
	assert.False(t, e.IsOn())
}
