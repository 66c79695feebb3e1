// Package network builds a visibility graph over a water region and finds
// shortest paths through it, honoring required waypoints along the way.
package network

import (
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/geo"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/polygon"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/shared"
)

// WaterBoundarySet is the navigable region: one or more water-body polygons
// plus any land polygons that carve holes out of them. A point is
// navigable when it falls inside at least one water-body polygon and
// outside every land polygon.
type WaterBoundarySet struct {
	WaterBodies []polygon.Polygon
	Land        []polygon.Polygon
}

// NewWaterBoundarySet validates that at least one water body is present.
func NewWaterBoundarySet(waterBodies, land []polygon.Polygon) (WaterBoundarySet, error) {
	if len(waterBodies) == 0 {
		return WaterBoundarySet{}, shared.NewGeometryError("network: at least one water body is required")
	}
	return WaterBoundarySet{WaterBodies: waterBodies, Land: land}, nil
}

// Contains reports whether p is navigable water.
func (w WaterBoundarySet) Contains(p geo.GPoint) bool {
	inWater := false
	for _, body := range w.WaterBodies {
		if polygon.PointIsInPolygon(body, p) {
			inWater = true
			break
		}
	}
	if !inWater {
		return false
	}
	for _, land := range w.Land {
		if polygon.PointIsInPolygon(land, p) {
			return false
		}
	}
	return true
}

// segmentIsNavigable reports whether the straight segment a-b stays within
// water for its whole length: it must not cross any obstacle ring (land
// polygons and water-body holes), its midpoint must not lie inside an
// obstacle, and it must not cross outside any water-body outer ring
// (crossing a water-body's own outer ring would mean leaving the region
// entirely). Obstacle edges that end at a or b are not counted, so a
// segment may start or end on an obstacle vertex.
func (w WaterBoundarySet) segmentIsNavigable(a, b geo.GPoint) bool {
	obstacles := append([]polygon.Polygon(nil), w.Land...)
	for _, body := range w.WaterBodies {
		for _, h := range body.Holes {
			obstacles = append(obstacles, polygon.Polygon{Outer: h})
		}
	}
	mid := geo.NewGPoint((a.Lon+b.Lon)/2, (a.Lat+b.Lat)/2)
	for _, obs := range obstacles {
		if polygon.PointIsInPolygon(obs, mid) {
			return false
		}
		for _, ring := range append([][]geo.GPoint{obs.Outer}, obs.Holes...) {
			for i := range ring {
				p1, p2 := ring[i], ring[(i+1)%len(ring)]
				touchesEnd := p1.Equal(a) || p1.Equal(b) || p2.Equal(a) || p2.Equal(b)
				if !touchesEnd && polygon.SegmentsIntersect(a, b, p1, p2) {
					return false
				}
			}
		}
	}
	// The segment must stay within at least one water body: it is enough
	// that it does not cross that body's outer ring.
	for _, body := range w.WaterBodies {
		if !polygon.SegmentCrossesPolygon(polygon.Polygon{Outer: body.Outer}, a, b) {
			return true
		}
	}
	return false
}

// allObstacleVertices collects every vertex of every land ring (outer and
// holes) plus every water-body hole ring, used as visibility-graph
// candidate nodes; vertices shared between rings are not deduplicated.
func (w WaterBoundarySet) allObstacleVertices() []geo.GPoint {
	var verts []geo.GPoint
	for _, land := range w.Land {
		verts = append(verts, land.Outer...)
		for _, h := range land.Holes {
			verts = append(verts, h...)
		}
	}
	for _, body := range w.WaterBodies {
		for _, h := range body.Holes {
			verts = append(verts, h...)
		}
	}
	return verts
}
