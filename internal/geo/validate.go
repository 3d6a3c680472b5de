// Package geo resolves free-text location names to coordinates and measures
// distances between them.
package geo

import (
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
)

// IsValidCoordinate reports whether v is a two-field numeric coordinate with
// lat in [-90,90] and lng in [-180,180]. It accepts domain.Coordinate,
// *domain.Coordinate and decoded JSON objects (map[string]any with numeric
// "lat" and "lng"). Anything else, including bare pairs, is rejected: use
// FromPair to convert those explicitly.
func IsValidCoordinate(v any) bool {
	switch c := v.(type) {
	case domain.Coordinate:
		return c.Valid()
	case *domain.Coordinate:
		return c != nil && c.Valid()
	case map[string]any:
		if len(c) != 2 {
			return false
		}
		lat, ok := number(c["lat"])
		if !ok {
			return false
		}
		lng, ok := number(c["lng"])
		if !ok {
			return false
		}
		return domain.Coordinate{Lat: lat, Lng: lng}.Valid()
	default:
		return false
	}
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		return 0, false
	}
}

// FromPair converts a [lat, lng] pair into a Coordinate.
func FromPair(pair []float64) (domain.Coordinate, bool) {
	if len(pair) != 2 {
		return domain.Coordinate{}, false
	}
	c := domain.Coordinate{Lat: pair[0], Lng: pair[1]}
	if !c.Valid() {
		return domain.Coordinate{}, false
	}
	return c, true
}

// ToPair converts a valid Coordinate into its [lat, lng] form.
func ToPair(c domain.Coordinate) ([2]float64, bool) {
	if !c.Valid() {
		return [2]float64{}, false
	}
	return [2]float64{c.Lat, c.Lng}, true
}
