// Package geo provides the pure great-circle math every zone membership
// decision is based on.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// earthRadiusMeters is the spherical Earth radius used for all distances.
const earthRadiusMeters = 6371000.0

// DistanceMeters returns the haversine great-circle distance between two
// points in meters. Deterministic and side-effect free; the caller guarantees
// finite coordinates in valid ranges.
func DistanceMeters(a, b orb.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	deltaLat := (b.Lat() - a.Lat()) * math.Pi / 180
	deltaLon := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}
