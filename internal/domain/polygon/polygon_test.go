package polygon

import (
	"testing"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(minLon, minLat, maxLon, maxLat float64) []geo.GPoint {
	return []geo.GPoint{
		geo.NewGPoint(minLon, minLat),
		geo.NewGPoint(maxLon, minLat),
		geo.NewGPoint(maxLon, maxLat),
		geo.NewGPoint(minLon, maxLat),
	}
}

func TestNewPolygonRejectsDegenerateRing(t *testing.T) {
	_, err := NewPolygon([]geo.GPoint{geo.NewGPoint(0, 0), geo.NewGPoint(1, 1)}, nil)
	require.Error(t, err)
}

func TestPointIsInPolygonOuterOnly(t *testing.T) {
	poly, err := NewPolygon(square(0, 0, 10, 10), nil)
	require.NoError(t, err)

	assert.True(t, PointIsInPolygon(poly, geo.NewGPoint(5, 5)))
	assert.False(t, PointIsInPolygon(poly, geo.NewGPoint(20, 20)))
}

func TestPointIsInPolygonExcludesHole(t *testing.T) {
	poly, err := NewPolygon(square(0, 0, 10, 10), [][]geo.GPoint{square(4, 4, 6, 6)})
	require.NoError(t, err)

	assert.True(t, PointIsInPolygon(poly, geo.NewGPoint(1, 1)))
	assert.False(t, PointIsInPolygon(poly, geo.NewGPoint(5, 5)))
}

func TestSegmentsIntersectCrossing(t *testing.T) {
	a := geo.NewGPoint(0, 0)
	b := geo.NewGPoint(10, 10)
	c := geo.NewGPoint(0, 10)
	d := geo.NewGPoint(10, 0)
	assert.True(t, SegmentsIntersect(a, b, c, d))
}

func TestSegmentsIntersectParallelDoNotCross(t *testing.T) {
	a := geo.NewGPoint(0, 0)
	b := geo.NewGPoint(10, 0)
	c := geo.NewGPoint(0, 5)
	d := geo.NewGPoint(10, 5)
	assert.False(t, SegmentsIntersect(a, b, c, d))
}

func TestSegmentCrossesPolygonThroughLand(t *testing.T) {
	poly, err := NewPolygon(square(0, 0, 10, 10), nil)
	require.NoError(t, err)

	outside1 := geo.NewGPoint(-5, 5)
	outside2 := geo.NewGPoint(15, 5)
	assert.True(t, SegmentCrossesPolygon(poly, outside1, outside2))
}

func TestGetMaxClearWidthPositiveInsideRegion(t *testing.T) {
	poly, err := NewPolygon(square(0, 0, 10, 10), nil)
	require.NoError(t, err)

	width := GetMaxClearWidth(poly, geo.NewGPoint(4, 5), geo.NewGPoint(6, 5))
	assert.Greater(t, width, 0.0)
}

func TestBoundsOfRing(t *testing.T) {
	b := BoundsOfRing(square(1, 2, 3, 4))
	assert.Equal(t, 1.0, b.MinLon)
	assert.Equal(t, 4.0, b.MaxLat)
}
