package propulsion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPropeller(t *testing.T) *Propeller {
	t.Helper()
	g, err := NewGearbox(twoEngines(t), 1.0, 0.97)
	require.NoError(t, err)
	p, err := NewPropeller(5.0, 1.0, 0.65, 4, 0.15, 0.18, g)
	require.NoError(t, err)
	return p
}

func TestNewPropellerRejectsOutOfRangeBSeriesInputs(t *testing.T) {
	g, err := NewGearbox(twoEngines(t), 1.0, 0.97)
	require.NoError(t, err)
	_, err = NewPropeller(5.0, 3.0, 0.65, 4, 0.15, 0.18, g) // P/D way above range
	assert.Error(t, err)
}

func TestNewPropellerRejectsNonPositiveDiameter(t *testing.T) {
	g, err := NewGearbox(twoEngines(t), 1.0, 0.97)
	require.NoError(t, err)
	_, err = NewPropeller(0, 1.0, 0.65, 4, 0.15, 0.18, g)
	assert.Error(t, err)
}

func TestAdvanceRatioClampedToUnitRange(t *testing.T) {
	p := newTestPropeller(t)
	j := p.AdvanceRatio(100.0, 60.0) // very fast ship, slow shaft -> would exceed 1
	assert.LessOrEqual(t, j, 1.0)
	assert.GreaterOrEqual(t, j, 0.0)
}

func TestAdvanceRatioZeroWhenStopped(t *testing.T) {
	p := newTestPropeller(t)
	assert.Equal(t, 0.0, p.AdvanceRatio(5.0, 0))
}

func TestOpenWaterEfficiencyUsesFixedValueBelowFloor(t *testing.T) {
	p := newTestPropeller(t)
	eff := p.OpenWaterEfficiency(0.1, 1e6)
	assert.Equal(t, propellerEfficiencyAtZeroSpeed, eff)
}

func TestOpenWaterEfficiencyIsBoundedAboveFloor(t *testing.T) {
	p := newTestPropeller(t)
	eff := p.OpenWaterEfficiency(0.7, 1e6)
	assert.Greater(t, eff, 0.0)
	assert.Less(t, eff, 1.0)
}

func TestThrustBoundNIsPositive(t *testing.T) {
	p := newTestPropeller(t)
	bound := p.ThrustBoundN(1025.0, 500000.0)
	assert.Greater(t, bound, 0.0)
}

func TestSlipRatioZeroWhenStopped(t *testing.T) {
	p := newTestPropeller(t)
	assert.Equal(t, 0.0, p.SlipRatio(5.0, 0))
}

func TestSearchOptimumJStaysWithinUnitRange(t *testing.T) {
	p := newTestPropeller(t)
	j := p.SearchOptimumJ(1e6)
	assert.GreaterOrEqual(t, j, 0.0)
	assert.LessOrEqual(t, j, 1.0)
}

func TestSolveOperatingPointFindsFeasiblePoint(t *testing.T) {
	p := newTestPropeller(t)
	enginePower := func(rpm float64) float64 {
		return enginePropertiesAtRPM(sampleCurve(), rpm).BrakePowerKW
	}
	rpm, err := p.SolveOperatingPoint(8.0, 1025.0, 1e6, enginePower, 10, 500)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, rpm, 10.0)
	assert.LessOrEqual(t, rpm, 500.0)
}
