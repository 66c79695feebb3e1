// Package polygon implements the planar geometry primitives used to build
// the navigable water region: polygons with holes, bounding boxes, segment
// intersection, and point-in-polygon membership.
package polygon

import (
	"math"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/geo"
	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/shared"
)

const orientationEpsilon = 1e-9

// Polygon is a simple outer ring with zero or more hole rings, all in
// geographic (WGS84) coordinates. Rings are not required to be explicitly
// closed (first point repeated); membership and intersection tests treat
// the last vertex as implicitly connected back to the first.
type Polygon struct {
	Outer []geo.GPoint
	Holes [][]geo.GPoint
}

// NewPolygon validates the outer ring has at least 3 vertices and that
// every hole is non-degenerate, returning a GeometryError otherwise.
func NewPolygon(outer []geo.GPoint, holes [][]geo.GPoint) (Polygon, error) {
	if len(outer) < 3 {
		return Polygon{}, shared.NewGeometryError("polygon: outer ring needs at least 3 vertices")
	}
	for i, h := range holes {
		if len(h) < 3 {
			return Polygon{}, shared.NewGeometryError("polygon: hole ring needs at least 3 vertices")
		}
		_ = i
	}
	return Polygon{Outer: outer, Holes: holes}, nil
}

// BoundingBox is an axis-aligned box in geographic degrees.
type BoundingBox struct {
	MinLon, MinLat, MaxLon, MaxLat float64
}

// Contains reports whether p lies within the box, inclusive of the edges.
func (b BoundingBox) Contains(p geo.GPoint) bool {
	return p.Lon >= b.MinLon && p.Lon <= b.MaxLon && p.Lat >= b.MinLat && p.Lat <= b.MaxLat
}

// Intersects reports whether two boxes overlap.
func (b BoundingBox) Intersects(o BoundingBox) bool {
	return b.MinLon <= o.MaxLon && b.MaxLon >= o.MinLon &&
		b.MinLat <= o.MaxLat && b.MaxLat >= o.MinLat
}

// BoundsOfRing computes the bounding box of a single ring.
func BoundsOfRing(ring []geo.GPoint) BoundingBox {
	b := BoundingBox{
		MinLon: math.Inf(1), MinLat: math.Inf(1),
		MaxLon: math.Inf(-1), MaxLat: math.Inf(-1),
	}
	for _, p := range ring {
		b.MinLon = math.Min(b.MinLon, p.Lon)
		b.MaxLon = math.Max(b.MaxLon, p.Lon)
		b.MinLat = math.Min(b.MinLat, p.Lat)
		b.MaxLat = math.Max(b.MaxLat, p.Lat)
	}
	return b
}

// Bounds returns the bounding box of the outer ring only; holes are always
// contained within it so they do not extend it.
func (poly Polygon) Bounds() BoundingBox {
	return BoundsOfRing(poly.Outer)
}

// orientation classifies the turn from a->b->c: positive for
// counter-clockwise, negative for clockwise, zero (within epsilon) for
// collinear. Matches the standard cross-product sign test.
func orientation(a, b, c geo.GPoint) float64 {
	return (b.Lon-a.Lon)*(c.Lat-a.Lat) - (b.Lat-a.Lat)*(c.Lon-a.Lon)
}

func sign(v float64) int {
	if v > orientationEpsilon {
		return 1
	}
	if v < -orientationEpsilon {
		return -1
	}
	return 0
}

func onSegment(a, b, p geo.GPoint) bool {
	return math.Min(a.Lon, b.Lon)-orientationEpsilon <= p.Lon && p.Lon <= math.Max(a.Lon, b.Lon)+orientationEpsilon &&
		math.Min(a.Lat, b.Lat)-orientationEpsilon <= p.Lat && p.Lat <= math.Max(a.Lat, b.Lat)+orientationEpsilon
}

// SegmentsIntersect reports whether segments (p1,p2) and (p3,p4) intersect,
// including touching endpoints and collinear overlap, using the standard
// orientation-based test.
func SegmentsIntersect(p1, p2, p3, p4 geo.GPoint) bool {
	o1 := sign(orientation(p1, p2, p3))
	o2 := sign(orientation(p1, p2, p4))
	o3 := sign(orientation(p3, p4, p1))
	o4 := sign(orientation(p3, p4, p2))

	if o1 != o2 && o3 != o4 {
		return true
	}

	if o1 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if o2 == 0 && onSegment(p1, p2, p4) {
		return true
	}
	if o3 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if o4 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	return false
}

// pointInRing implements the standard ray-casting test against a single
// ring, treating it as implicitly closed.
func pointInRing(ring []geo.GPoint, p geo.GPoint) bool {
	inside := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[i], ring[j]
		if (a.Lat > p.Lat) != (b.Lat > p.Lat) {
			slopeLon := (b.Lon-a.Lon)*(p.Lat-a.Lat)/(b.Lat-a.Lat) + a.Lon
			if p.Lon < slopeLon {
				inside = !inside
			}
		}
	}
	return inside
}

// PointIsInPolygon reports whether p is inside the outer ring and outside
// every hole ring (i.e. in navigable water).
func PointIsInPolygon(poly Polygon, p geo.GPoint) bool {
	if !poly.Bounds().Contains(p) {
		return false
	}
	if !pointInRing(poly.Outer, p) {
		return false
	}
	for _, h := range poly.Holes {
		if pointInRing(h, p) {
			return false
		}
	}
	return true
}

// SegmentCrossesPolygon reports whether the segment a-b meets the polygon's
// boundary: it intersects any edge of the outer ring or any hole ring,
// touching included (an endpoint of a-b lying on a ring counts).
func SegmentCrossesPolygon(poly Polygon, a, b geo.GPoint) bool {
	if segmentCrossesRing(poly.Outer, a, b) {
		return true
	}
	for _, h := range poly.Holes {
		if segmentCrossesRing(h, a, b) {
			return true
		}
	}
	return false
}

func segmentCrossesRing(ring []geo.GPoint, a, b geo.GPoint) bool {
	n := len(ring)
	for i := 0; i < n; i++ {
		p1 := ring[i]
		p2 := ring[(i+1)%n]
		if SegmentsIntersect(a, b, p1, p2) {
			return true
		}
	}
	return false
}

// GetMaxClearWidth estimates the widest clearance a straight segment has
// from the nearest land edge, by taking the minimum perpendicular distance
// from the segment's midpoint to every ring edge it does not itself lie on.
// Used to derive a channel's TheoreticalWidthM.
func GetMaxClearWidth(poly Polygon, a, b geo.GPoint) float64 {
	mid := geo.NewGPoint((a.Lon+b.Lon)/2, (a.Lat+b.Lat)/2)
	minDist := math.Inf(1)

	consider := func(ring []geo.GPoint) {
		n := len(ring)
		for i := 0; i < n; i++ {
			p1 := ring[i]
			p2 := ring[(i+1)%n]
			d := perpendicularDistance(mid, p1, p2)
			if d < minDist {
				minDist = d
			}
		}
	}
	consider(poly.Outer)
	for _, h := range poly.Holes {
		consider(h)
	}
	if math.IsInf(minDist, 1) {
		return 0
	}
	return minDist
}

// perpendicularDistance approximates the metric distance from p to the
// segment p1-p2 using geodesic distances to the nearest point on the
// segment, sampled via projection onto the chord in degree-space and
// clamped to the segment's extent.
func perpendicularDistance(p, p1, p2 geo.GPoint) float64 {
	dx := p2.Lon - p1.Lon
	dy := p2.Lat - p1.Lat
	lenSq := dx*dx + dy*dy
	if lenSq < 1e-18 {
		return geo.Distance(p, p1)
	}
	t := ((p.Lon-p1.Lon)*dx + (p.Lat-p1.Lat)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	closest := geo.NewGPoint(p1.Lon+t*dx, p1.Lat+t*dy)
	return geo.Distance(p, closest)
}
