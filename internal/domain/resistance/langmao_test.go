package resistance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLangMaoDynamicZeroWaveHeightYieldsNoWaveTerms(t *testing.T) {
	hull := sampleHull(t)
	env := Environment{SalinityPPT: 35, TemperatureC: 15, WaveHeightM: 0}
	st := State{SpeedMPS: 7.5}

	d := NewLangMaoDynamic().Dynamic(hull, env, st)

	assert.Equal(t, 0.0, d.WaveReflectionN)
	assert.Equal(t, 0.0, d.WaveMotionN)
}

func TestLangMaoDynamicWindOpposingHeadingResists(t *testing.T) {
	hull := sampleHull(t)
	env := Environment{WindSpeedMPS: 10, WindDirectionDeg: 0}
	st := State{SpeedMPS: 7.5, HeadingDeg: 0}

	d := NewLangMaoDynamic().Dynamic(hull, env, st)
	assert.Greater(t, d.WindN, 0.0)
}

func TestLangMaoDynamicDelegatesCalmWater(t *testing.T) {
	hull := sampleHull(t)
	env := Environment{SalinityPPT: 35, TemperatureC: 15}
	st := State{SpeedMPS: 7.5}

	m := NewLangMaoDynamic()
	b, _ := m.CalmWater(hull, env, st)
	assert.Greater(t, b.TotalN(), 0.0)
}

func TestEncounterAngleNormalizesToHalfCircle(t *testing.T) {
	angle := encounterAngleRad(350, 10)
	assert.LessOrEqual(t, angle, 3.1416)
	assert.GreaterOrEqual(t, angle, 0.0)
}
