// Package geoutil computes great-circle distances between operator and
// unmanned-aircraft positions using s2's spherical geometry, the way a
// ground-control dashboard checks an aircraft against its operator's
// declared standoff radius.
package geoutil

import "github.com/golang/geo/s2"

// earthRadiusMeters is the mean Earth radius used for s2's angle-to-arc-length conversion.
const earthRadiusMeters = 6371008.8

// Distance returns the great-circle distance in meters between the
// operator's position and the unmanned aircraft's position.
func Distance(opLat, opLon, uaLat, uaLon float64) float64 {
	op := s2.LatLngFromDegrees(opLat, opLon)
	ua := s2.LatLngFromDegrees(uaLat, uaLon)
	return op.Distance(ua).Radians() * earthRadiusMeters
}

// WithinRadius reports whether the unmanned aircraft's position lies
// within radiusMeters of the operator's position.
func WithinRadius(opLat, opLon, uaLat, uaLon, radiusMeters float64) bool {
	return Distance(opLat, opLon, uaLat, uaLon) <= radiusMeters
}
