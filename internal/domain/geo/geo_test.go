package geo

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceSymmetry(t *testing.T) {
	a := NewGPoint(-5.0, 50.0)
	b := NewGPoint(2.0, 48.5)

	dab := Distance(a, b)
	dba := Distance(b, a)

	assert.InDelta(t, dab, dba, 1e-6, "distance must be symmetric to 1e-6 m")
}

func TestDistanceZeroForCoincidentPoints(t *testing.T) {
	a := NewGPoint(10, 10)
	assert.Equal(t, 0.0, Distance(a, a))
}

func TestBearingCardinalDirections(t *testing.T) {
	origin := NewGPoint(0, 0)
	north := NewGPoint(0, 1)
	east := NewGPoint(1, 0)

	assert.InDelta(t, 0.0, Bearing(origin, north), 0.5)
	assert.InDelta(t, 90.0, Bearing(origin, east), 0.5)
}

func TestPointAtDistanceAndHeadingRoundTrips(t *testing.T) {
	start := NewGPoint(-1.5, 52.0)
	dest := PointAtDistanceAndHeading(start, 50000, 45)

	got := Distance(start, dest)
	assert.InDelta(t, 50000, got, 1.0)
}

func TestSerializeRoundTrip(t *testing.T) {
	p := NewPort(12.34, -56.78, "port-rotterdam", 3600*time.Second)

	data := Serialize(p)
	back, err := Deserialize(data)
	require.NoError(t, err)

	assert.True(t, p.IsExactlyEqual(back), "round-tripped point must be exactly equal")
}

func TestSerializeRecordLength(t *testing.T) {
	p := NewGPoint(1, 2)
	data := Serialize(p)
	// 8 (lon) + 8 (lat) + 8 (idLen) + 0 (empty id) + 1 (port flag) + 8 (dwell)
	assert.Equal(t, 33, len(data))
}

func TestReprojectRejectsGeographicTarget(t *testing.T) {
	geographic := Projection{Kind: KindGeographic}
	_, err := Reproject(NewGPoint(1, 1), geographic)
	require.Error(t, err)
}

func TestReprojectUnprojectRoundTrip(t *testing.T) {
	p := NewGPoint(10, 45)
	proj := DefaultProjection()

	pp, err := Reproject(p, proj)
	require.NoError(t, err)

	back, err := Unproject(pp)
	require.NoError(t, err)

	assert.InDelta(t, p.Lon, back.Lon, 1e-6)
	assert.InDelta(t, p.Lat, back.Lat, 1e-6)
}

func TestDefaultProjectionIsStable(t *testing.T) {
	a := DefaultProjection()
	b := DefaultProjection()
	assert.Equal(t, a, b)
}

func TestEqualityExactness(t *testing.T) {
	a := NewGPoint(1, 2)
	b := NewGPoint(1, 2+1e-15)
	if a == b {
		t.Skip("float noise collapsed in this environment")
	}
	assert.False(t, a.Equal(b))
}

func TestNormalizeLongitudeWrap(t *testing.T) {
	start := NewGPoint(179.9, 0)
	dest := PointAtDistanceAndHeading(start, 200000, 90)
	assert.True(t, math.Abs(dest.Lon) <= 180)
}
