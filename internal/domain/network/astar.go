package network

import (
	"container/heap"
	"math"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/geo"
)

// astarItem carries both the accumulated cost (g) and the f = g + h
// priority used to order the open set.
type astarItem struct {
	index int
	g     float64
	f     float64
}

type astarPQ []*astarItem

func (pq astarPQ) Len() int            { return len(pq) }
func (pq astarPQ) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq astarPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *astarPQ) Push(x interface{}) { *pq = append(*pq, x.(*astarItem)) }
func (pq *astarPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

// AStar finds the shortest path from start to goal using the geodesic
// distance to goal as an admissible heuristic (it never overestimates the
// true remaining distance, since straight-line geodesic length is a lower
// bound on any path through obstacles).
func aStar(g VisibilityGraph, start, goal int) indexPath {
	n := len(g.Nodes)
	gScore := make([]float64, n)
	parent := make([]int, n)
	visited := make([]bool, n)
	for i := range gScore {
		gScore[i] = math.Inf(1)
		parent[i] = -1
	}
	gScore[start] = 0

	heuristic := func(i int) float64 {
		return geo.Distance(g.Nodes[i], g.Nodes[goal])
	}

	pq := make(astarPQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &astarItem{index: start, g: 0, f: heuristic(start)})

	for pq.Len() > 0 {
		u := heap.Pop(&pq).(*astarItem)
		if visited[u.index] {
			continue
		}
		visited[u.index] = true
		if u.index == goal {
			break
		}
		for _, e := range g.Adjacency[u.index] {
			if visited[e.To] {
				continue
			}
			tentative := gScore[u.index] + e.Weight
			if tentative < gScore[e.To] {
				gScore[e.To] = tentative
				parent[e.To] = u.index
				heap.Push(&pq, &astarItem{index: e.To, g: tentative, f: tentative + heuristic(e.To)})
			}
		}
	}

	if math.IsInf(gScore[goal], 1) {
		return indexPath{}
	}
	return indexPath{Path: reconstructPath(parent, start, goal), TotalLengthM: gScore[goal]}
}

// Algorithm selects which shortest-path search ShortestPath uses.
type Algorithm int

const (
	AlgorithmDijkstra Algorithm = iota
	AlgorithmAStar
)
