package ports

import (
	"context"
	"time"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
)

// LocatedPoint is a resolved coordinate together with its geohash.
type LocatedPoint struct {
	Lat     float64
	Lng     float64
	Geohash string
}

// TrackedHistoryItem is a history entry enriched with its coordinate, if known.
type TrackedHistoryItem struct {
	Status      string
	Location    string
	Description string
	Timestamp   time.Time
	Coordinates *LocatedPoint
}

// TrackingView is the public view of a package.
type TrackingView struct {
	TrackingNumber string
	Sender         domain.Party
	Receiver       domain.Party
	ShipmentInfo   domain.ShipmentInfo
	Status         string
	Location       string
	Coordinates    *LocatedPoint
	History        []TrackedHistoryItem
	// RemainingKm is the great-circle distance from the current location to
	// the destination, when both resolve.
	RemainingKm *float64
}

// TrackingService serves public tracking lookups.
type TrackingService interface {
	Track(ctx context.Context, trackingNumber string) (*TrackingView, error)
}
