package geo

import (
	"math"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
)

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between a and b using the
// Haversine formula. It returns 0 when either point is invalid.
func DistanceKm(a, b domain.Coordinate) float64 {
	if !a.Valid() || !b.Valid() {
		return 0
	}

	const deg2rad = math.Pi / 180.0

	dLat := (b.Lat - a.Lat) * deg2rad
	dLng := (b.Lng - a.Lng) * deg2rad
	lat1 := a.Lat * deg2rad
	lat2 := b.Lat * deg2rad

	sinDLat := math.Sin(dLat / 2)
	sinDLng := math.Sin(dLng / 2)
	h := sinDLat*sinDLat + math.Cos(lat1)*math.Cos(lat2)*sinDLng*sinDLng
	// Rounding can push h just outside [0,1] for antipodal points.
	h = math.Min(1, math.Max(0, h))
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
