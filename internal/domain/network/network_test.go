package network

import (
	"errors"
	"testing"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/geo"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/polygon"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openWaterRegion(t *testing.T) WaterBoundarySet {
	t.Helper()
	outer := []geo.GPoint{
		geo.NewGPoint(0, 0), geo.NewGPoint(20, 0), geo.NewGPoint(20, 20), geo.NewGPoint(0, 20),
	}
	water, err := polygon.NewPolygon(outer, nil)
	require.NoError(t, err)
	set, err := NewWaterBoundarySet([]polygon.Polygon{water}, nil)
	require.NoError(t, err)
	return set
}

func TestShortestPathDirectInOpenWater(t *testing.T) {
	region := openWaterRegion(t)
	origin := geo.NewGPoint(2, 2)
	dest := geo.NewGPoint(18, 18)

	result, err := ShortestPath(region, []geo.GPoint{origin, dest}, AlgorithmDijkstra)
	require.NoError(t, err)
	require.Len(t, result.Points, 2)
	assert.Equal(t, len(result.Points)-1, len(result.Lines))
	assert.Equal(t, origin, result.Points[0])
	assert.Equal(t, dest, result.Points[len(result.Points)-1])
}

func TestShortestPathAStarMatchesDijkstraLength(t *testing.T) {
	region := openWaterRegion(t)
	origin := geo.NewGPoint(1, 1)
	dest := geo.NewGPoint(19, 15)

	dres, err := ShortestPath(region, []geo.GPoint{origin, dest}, AlgorithmDijkstra)
	require.NoError(t, err)
	ares, err := ShortestPath(region, []geo.GPoint{origin, dest}, AlgorithmAStar)
	require.NoError(t, err)

	assert.InDelta(t, dres.TotalLengthM, ares.TotalLengthM, 1.0)
}

func TestShortestPathRejectsWaypointOutsideWater(t *testing.T) {
	region := openWaterRegion(t)
	origin := geo.NewGPoint(2, 2)
	dest := geo.NewGPoint(100, 100)

	_, err := ShortestPath(region, []geo.GPoint{origin, dest}, AlgorithmDijkstra)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrWaypointNotInWater))
}

func TestShortestPathGoesAroundLandObstacle(t *testing.T) {
	outer := []geo.GPoint{
		geo.NewGPoint(0, 0), geo.NewGPoint(20, 0), geo.NewGPoint(20, 20), geo.NewGPoint(0, 20),
	}
	water, err := polygon.NewPolygon(outer, nil)
	require.NoError(t, err)

	landRing := []geo.GPoint{
		geo.NewGPoint(9, 5), geo.NewGPoint(11, 5), geo.NewGPoint(11, 15), geo.NewGPoint(9, 15),
	}
	land, err := polygon.NewPolygon(landRing, nil)
	require.NoError(t, err)

	region, err := NewWaterBoundarySet([]polygon.Polygon{water}, []polygon.Polygon{land})
	require.NoError(t, err)

	origin := geo.NewGPoint(2, 2)
	dest := geo.NewGPoint(18, 18)

	result, err := ShortestPath(region, []geo.GPoint{origin, dest}, AlgorithmDijkstra)
	require.NoError(t, err)
	assert.Greater(t, len(result.Points), 2, "path must detour around the land barrier")
}

func TestNewWaterBoundarySetRequiresAtLeastOneBody(t *testing.T) {
	_, err := NewWaterBoundarySet(nil, nil)
	require.Error(t, err)
}
