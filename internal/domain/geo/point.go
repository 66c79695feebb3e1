// Package geo implements the geodetic primitives of §4.A: WGS84 points,
// great-circle distance and bearing, and a default equal-area projection
// used for intermediate planar math.
package geo

import "time"

// GPoint is a point on WGS84 in decimal degrees, optionally tagged as a
// port with a dwell time. Equality is exact coordinate equality; use
// IsExactlyEqual to additionally compare identity and port metadata.
type GPoint struct {
	Lon float64
	Lat float64

	UserID      string
	IsPort      bool
	DwellTime   time.Duration
}

// NewGPoint builds an unnamed, non-port point.
func NewGPoint(lon, lat float64) GPoint {
	return GPoint{Lon: lon, Lat: lat}
}

// NewPort builds a port waypoint with the given dwell time.
func NewPort(lon, lat float64, userID string, dwell time.Duration) GPoint {
	return GPoint{Lon: lon, Lat: lat, UserID: userID, IsPort: true, DwellTime: dwell}
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Equal is exact coordinate equality, matching the source's definition of
// GPoint equality (no epsilon).
func (p GPoint) Equal(other GPoint) bool {
	return p.Lon == other.Lon && p.Lat == other.Lat
}

// IsExactlyEqual additionally compares user ID, port flag and dwell time.
func (p GPoint) IsExactlyEqual(other GPoint) bool {
	return p.Equal(other) &&
		p.UserID == other.UserID &&
		p.IsPort == other.IsPort &&
		p.DwellTime == other.DwellTime
}
