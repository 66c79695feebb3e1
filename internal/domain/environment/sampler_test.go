package environment

import (
	"math"
	"testing"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/geo"
	"github.com/stretchr/testify/assert"
)

func TestSampleFallsBackToDefaultsWhenUnset(t *testing.T) {
	s := NewSampler(0, 0, 10, 10, 5, 5)
	r := s.Sample(geo.NewGPoint(5, 5))

	assert.Equal(t, defaultSalinity, r.SalinityPPT)
	assert.Equal(t, defaultWaveHeightM, r.WaveHeightM)
	assert.Equal(t, defaultDepthM, r.DepthM)
	assert.InDelta(t, 1.0/defaultWavePeriodS, r.WaveFrequencyHz, 1e-9)
}

func TestSampleUsesSetValues(t *testing.T) {
	s := NewSampler(0, 0, 10, 10, 2, 2)
	s.Set(0, 0, 35, 2.0, 8.0, 3.0, 4.0, 40)
	r := s.Sample(geo.NewGPoint(0, 0))

	assert.Equal(t, 35.0, r.SalinityPPT)
	assert.Equal(t, 2.0, r.WaveHeightM)
	assert.Equal(t, 40.0, r.DepthM)
	assert.InDelta(t, 5.0, math.Hypot(r.WindEastMPS, r.WindNorthMPS), 1e-9)
}

func TestSampleTreatsNaNAsUnset(t *testing.T) {
	s := NewSampler(0, 0, 10, 10, 2, 2)
	s.Set(0, 0, math.NaN(), 2.0, 8.0, 0, 0, 40)
	r := s.Sample(geo.NewGPoint(0, 0))

	assert.Equal(t, defaultSalinity, r.SalinityPPT)
	assert.Equal(t, 40.0, r.DepthM)
}
