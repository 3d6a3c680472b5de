package ports

import (
	"context"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
)

// LocationResolver maps location names to coordinates.
type LocationResolver interface {
	// ResolveAll returns coordinates for the names it could resolve; names it
	// could not resolve are absent from the map.
	ResolveAll(ctx context.Context, names []string) map[string]domain.Coordinate
	// Cached looks a single name up without any external call.
	Cached(name string) (domain.Coordinate, bool)
}

// CacheWarmer resolves locations in the background so later lookups hit the cache.
type CacheWarmer interface {
	Warm(trackingNumber string, locations []string)
}
