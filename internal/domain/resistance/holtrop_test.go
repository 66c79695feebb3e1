package resistance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleHull(t *testing.T) HullForm {
	t.Helper()
	hull, _, err := NewHullForm(HullForm{
		WaterlineLengthM:   120,
		BeamM:              20,
		MeanDraftM:         7,
		BlockCoef:          0.65,
		PrismaticCoef:      0.62,
		MidshipSectionCoef: 0.98,
		ProjectedFrontalAreaM2: 300,
		AppendagesWettedSurfacesM2: 40,
	})
	require.NoError(t, err)
	return hull
}

func TestHoltropMennenProducesPositiveTotalAtCruiseSpeed(t *testing.T) {
	hull := sampleHull(t)
	env := Environment{SalinityPPT: 35, TemperatureC: 15}
	st := State{SpeedMPS: 7.5, HeadingDeg: 0}

	b, warnings := HoltropMennen{}.CalmWater(hull, env, st)

	assert.Empty(t, warnings, "this hull sits within the validated range")
	assert.Greater(t, b.TotalN(), 0.0)
	assert.Greater(t, b.FrictionN, 0.0, "friction dominates at typical displacement speeds")
}

func TestHoltropMennenZeroSpeedHasNoSpeedDependentTerms(t *testing.T) {
	hull := sampleHull(t)
	env := Environment{SalinityPPT: 35, TemperatureC: 15}
	st := State{SpeedMPS: 0}

	b, _ := HoltropMennen{}.CalmWater(hull, env, st)

	assert.Equal(t, 0.0, b.WaveN)
	assert.Equal(t, 0.0, b.AirN)
}

func TestHoltropMennenWarnsOutsideFroudeRange(t *testing.T) {
	hull := sampleHull(t)
	env := Environment{SalinityPPT: 35, TemperatureC: 15}
	st := State{SpeedMPS: 30} // far beyond a displacement hull's valid range

	_, warnings := HoltropMennen{}.CalmWater(hull, env, st)
	assert.NotEmpty(t, warnings)
}

func TestNewHullFormFallsBackToLBP(t *testing.T) {
	hull, usedFallback, err := NewHullForm(HullForm{
		LengthBetweenPerpendicularsM: 100,
		BeamM:                        18,
		MeanDraftM:                   6,
		BlockCoef:                    0.6,
	})
	require.NoError(t, err)
	assert.True(t, usedFallback)
	assert.Equal(t, 100.0, hull.WaterlineLengthM)
}

func TestNewHullFormRejectsMissingLength(t *testing.T) {
	_, _, err := NewHullForm(HullForm{BeamM: 10, MeanDraftM: 5, BlockCoef: 0.6})
	require.Error(t, err)
}
