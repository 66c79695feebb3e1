package geo

import (
	"math"
	"sync"

	"github.com/VTTI-CSM/ShipNetSim-sub001/internal/domain/shared"
)

// ProjectionKind distinguishes projected (planar, meters) from geographic
// (angular, degrees) coordinate reference systems.
type ProjectionKind int

const (
	KindGeographic ProjectionKind = iota
	KindProjected
)

// Projection is a minimal coordinate reference system descriptor. The
// default instance used for intermediate 2D math is World Behrmann
// (cylindrical equal-area, standard parallel 30N/S), matching the source's
// hard-coded default projected CRS.
type Projection struct {
	Name           string
	Kind           ProjectionKind
	StandardParallelDeg float64 // only meaningful for the Behrmann family
}

var (
	defaultProjectionOnce sync.Once
	defaultProjection     Projection
)

// DefaultProjection returns the process-wide immutable World Behrmann
// singleton. Per §9 ("global mutable state"), this replaces the source's
// static default projected CRS with a lazily-initialized, never-mutated
// value; callers receive a copy, never a pointer into shared state.
func DefaultProjection() Projection {
	defaultProjectionOnce.Do(func() {
		defaultProjection = Projection{
			Name:                "World_Behrmann",
			Kind:                KindProjected,
			StandardParallelDeg: 30.0,
		}
	})
	return defaultProjection
}

// ProjectedPoint is a planar coordinate in meters under some Projection.
type ProjectedPoint struct {
	X, Y float64
	CRS  Projection
}

// Reproject maps a geographic GPoint onto the given projected CRS using the
// cylindrical equal-area (Lambert/Behrmann family) forward formula. It
// fails with a GeometryError when target is not of kind KindProjected,
// matching the source's requirement that reprojection targets be of the
// expected kind.
func Reproject(p GPoint, target Projection) (ProjectedPoint, error) {
	if target.Kind != KindProjected {
		return ProjectedPoint{}, shared.NewGeometryError(
			"reproject: target CRS must be projected")
	}

	phi0 := deg2rad(target.StandardParallelDeg)
	lambda := deg2rad(p.Lon)
	phi := deg2rad(p.Lat)

	x := wgs84SemiMajorAxis * lambda * math.Cos(phi0)
	y := wgs84SemiMajorAxis * math.Sin(phi) / math.Cos(phi0)

	return ProjectedPoint{X: x, Y: y, CRS: target}, nil
}

// Unproject inverts Reproject, recovering a geographic GPoint from a planar
// point under the same CRS family. Fails if the point's CRS is not
// projected.
func Unproject(pp ProjectedPoint) (GPoint, error) {
	if pp.CRS.Kind != KindProjected {
		return GPoint{}, shared.NewGeometryError(
			"unproject: source CRS must be projected")
	}

	phi0 := deg2rad(pp.CRS.StandardParallelDeg)
	lambda := pp.X / (wgs84SemiMajorAxis * math.Cos(phi0))
	sinPhi := pp.Y * math.Cos(phi0) / wgs84SemiMajorAxis
	sinPhi = math.Max(-1, math.Min(1, sinPhi))
	phi := math.Asin(sinPhi)

	return GPoint{Lon: rad2deg(lambda), Lat: rad2deg(phi)}, nil
}
