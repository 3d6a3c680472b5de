package geo

import "github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"

// Hub is a named logistics location with a known coordinate.
type Hub struct {
	Name       string
	Coordinate domain.Coordinate
}

// DefaultHubs returns the built-in hub table used to seed a LocationCache.
// Order matters: lookups walk entries in this order.
func DefaultHubs() []Hub {
	return []Hub{
		{"london", domain.Coordinate{Lat: 51.5074, Lng: -0.1278}},
		{"paris", domain.Coordinate{Lat: 48.8566, Lng: 2.3522}},
		{"new york", domain.Coordinate{Lat: 40.7128, Lng: -74.0060}},
		{"tokyo", domain.Coordinate{Lat: 35.6762, Lng: 139.6503}},
		{"singapore", domain.Coordinate{Lat: 1.3521, Lng: 103.8198}},
		{"dubai", domain.Coordinate{Lat: 25.2048, Lng: 55.2708}},
		{"shanghai", domain.Coordinate{Lat: 31.2304, Lng: 121.4737}},
		{"hong kong", domain.Coordinate{Lat: 22.3193, Lng: 114.1694}},
		{"amsterdam", domain.Coordinate{Lat: 52.3676, Lng: 4.9041}},
		{"frankfurt", domain.Coordinate{Lat: 50.1109, Lng: 8.6821}},
		{"los angeles", domain.Coordinate{Lat: 34.0522, Lng: -118.2437}},
		{"chicago", domain.Coordinate{Lat: 41.8781, Lng: -87.6298}},
		{"toronto", domain.Coordinate{Lat: 43.6532, Lng: -79.3832}},
		{"sydney", domain.Coordinate{Lat: -33.8688, Lng: 151.2093}},
		{"mumbai", domain.Coordinate{Lat: 19.0760, Lng: 72.8777}},
		{"bangkok", domain.Coordinate{Lat: 13.7563, Lng: 100.5018}},
	}
}
