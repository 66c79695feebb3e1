package network

import (
	"container/heap"
	"math"
)

// indexPath is the outcome of a single-leg graph search: the ordered node
// indices forming the path and its total geodesic length. Nil Path means
// no path was found.
type indexPath struct {
	Path         []int
	TotalLengthM float64
}

// nodeItem is one entry in the priority queue, grounded on the index-based
// container/heap.Interface shape used throughout the pack's graph code.
type nodeItem struct {
	index int
	dist  float64
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

// Dijkstra finds the shortest path from start to goal over g using a
// binary-heap priority queue. Returns ErrNoPathFound wrapped via the
// caller if no path exists (signaled here by an empty Path).
func dijkstra(g VisibilityGraph, start, goal int) indexPath {
	n := len(g.Nodes)
	dist := make([]float64, n)
	parent := make([]int, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		parent[i] = -1
	}
	dist[start] = 0

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{index: start, dist: 0})

	for pq.Len() > 0 {
		u := heap.Pop(&pq).(*nodeItem)
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
			newDist := dist[u.index] + e.Weight
			if newDist < dist[e.To] {
				dist[e.To] = newDist
				parent[e.To] = u.index
				heap.Push(&pq, &nodeItem{index: e.To, dist: newDist})
			}
		}
	}

	if math.IsInf(dist[goal], 1) {
		return indexPath{}
	}
	return indexPath{Path: reconstructPath(parent, start, goal), TotalLengthM: dist[goal]}
}

func reconstructPath(parent []int, start, goal int) []int {
	var path []int
	for at := goal; at != -1; at = parent[at] {
		path = append([]int{at}, path...)
		if at == start {
			break
		}
	}
	if len(path) == 0 || path[0] != start {
		return nil
	}
	return path
}
