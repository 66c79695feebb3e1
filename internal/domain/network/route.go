package network

import (
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/geo"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/shared"
)

// ShortestPathResult is an ordered list of GPoints and the GLines between
// them; empty on failure. When non-empty, len(Points) == len(Lines)+1 and
// consecutive lines share an endpoint.
type ShortestPathResult struct {
	Points       []geo.GPoint
	Lines        []geo.GLine
	TotalLengthM float64
}

// ShortestPath builds a visibility graph over region and waypoints (the
// must-traverse stops, in order, including origin and destination) and
// concatenates the shortest path between each consecutive pair. Every
// waypoint must itself be navigable water, or ErrWaypointNotInWater is
// returned; if any leg has no path at all, ErrNoPathFound is returned.
func ShortestPath(region WaterBoundarySet, waypoints []geo.GPoint, algo Algorithm) (ShortestPathResult, error) {
	if len(waypoints) < 2 {
		return ShortestPathResult{}, shared.NewGeometryError("network: at least origin and destination are required")
	}
	for _, wp := range waypoints {
		if !region.Contains(wp) {
			return ShortestPathResult{}, shared.ErrWaypointNotInWater
		}
	}

	g := BuildVisibilityGraph(region, waypoints)

	search := dijkstra
	if algo == AlgorithmAStar {
		search = aStar
	}

	var indices []int
	total := 0.0
	for i := 0; i < len(waypoints)-1; i++ {
		from := g.NodeIndex(waypoints[i])
		to := g.NodeIndex(waypoints[i+1])
		leg := search(g, from, to)
		if leg.Path == nil {
			return ShortestPathResult{}, shared.ErrNoPathFound
		}
		if i == 0 {
			indices = append(indices, leg.Path...)
		} else {
			indices = append(indices, leg.Path[1:]...)
		}
		total += leg.TotalLengthM
	}

	points := make([]geo.GPoint, len(indices))
	for i, idx := range indices {
		points[i] = g.Nodes[idx]
	}
	lines := make([]geo.GLine, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		lines = append(lines, geo.NewGLine(points[i], points[i+1]))
	}

	return ShortestPathResult{Points: points, Lines: lines, TotalLengthM: total}, nil
}
