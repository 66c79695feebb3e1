package network

import (
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/geo"
)

// VisibilityGraph is an adjacency-list graph over a fixed set of nodes
// (waypoints plus obstacle vertices), with an edge between any two nodes
// whose connecting segment stays entirely within navigable water.
type VisibilityGraph struct {
	Nodes []geo.GPoint
	// Adjacency maps a node index to the indices of nodes directly visible
	// from it, alongside the geodesic edge weight.
	Adjacency map[int][]Edge
}

// Edge is a directed visibility-graph edge with its geodesic weight.
type Edge struct {
	To     int
	Weight float64
}

// BuildVisibilityGraph constructs the graph over must-traverse waypoints
// plus every obstacle vertex in the water region, connecting any pair of
// nodes whose segment does not cross land.
func BuildVisibilityGraph(region WaterBoundarySet, waypoints []geo.GPoint) VisibilityGraph {
	nodes := make([]geo.GPoint, 0, len(waypoints)+8)
	nodes = append(nodes, waypoints...)
	nodes = append(nodes, region.allObstacleVertices()...)

	g := VisibilityGraph{
		Nodes:     nodes,
		Adjacency: make(map[int][]Edge, len(nodes)),
	}

	n := len(nodes)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := nodes[i], nodes[j]
			if !region.segmentIsNavigable(a, b) {
				continue
			}
			d := geo.Distance(a, b)
			g.Adjacency[i] = append(g.Adjacency[i], Edge{To: j, Weight: d})
			g.Adjacency[j] = append(g.Adjacency[j], Edge{To: i, Weight: d})
		}
	}
	return g
}

// NodeIndex returns the index of p within the graph's node set, or -1 if p
// is not a known node (exact coordinate match).
func (g VisibilityGraph) NodeIndex(p geo.GPoint) int {
	for i, n := range g.Nodes {
		if n.Equal(p) {
			return i
		}
	}
	return -1
}
