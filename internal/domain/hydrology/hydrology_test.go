package hydrology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFroudeNumberZeroLength(t *testing.T) {
	assert.Equal(t, 0.0, FroudeNumber(5, 0))
}

func TestFroudeNumberKnownValue(t *testing.T) {
	fn := FroudeNumber(10, 100)
	assert.InDelta(t, 0.319, fn, 0.01)
}

func TestReynoldsNumberDefaultsViscosity(t *testing.T) {
	rn := ReynoldsNumber(10, 100, 0)
	assert.Greater(t, rn, 0.0)
}

func TestWaterDensityIncreasesWithSalinity(t *testing.T) {
	fresh := WaterDensity(0, 15)
	salty := WaterDensity(35, 15)
	assert.Greater(t, salty, fresh)
}
