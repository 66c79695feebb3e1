package propulsion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKTPositiveAtTypicalOperatingPoint(t *testing.T) {
	kt := KT(0.6, 1.0, 0.65, 4, 1e6)
	assert.Greater(t, kt, 0.0)
}

func TestKQPositiveAtTypicalOperatingPoint(t *testing.T) {
	kq := KQ(0.6, 1.0, 0.65, 4, 1e6)
	assert.Greater(t, kq, 0.0)
}

func TestZeroAdvanceRatioIsFlooredNotZero(t *testing.T) {
	ktAtZero := KT(0, 1.0, 0.65, 4, 1e6)
	ktAtFloor := KT(0.0001, 1.0, 0.65, 4, 1e6)
	assert.Equal(t, ktAtFloor, ktAtZero)
}

func TestReynoldsCorrectionChangesResultAboveThreshold(t *testing.T) {
	below := KT(0.6, 1.0, 0.65, 4, 1e5)
	above := KT(0.6, 1.0, 0.65, 4, 3e6)
	assert.NotEqual(t, below, above)
}

func TestCheckBSeriesApplicabilityRange(t *testing.T) {
	assert.True(t, checkBSeriesApplicability(1.0, 0.65, 4))
	assert.False(t, checkBSeriesApplicability(1.0, 0.65, 1))
	assert.False(t, checkBSeriesApplicability(2.0, 0.65, 4))
	assert.False(t, checkBSeriesApplicability(1.0, 1.5, 4))
}
