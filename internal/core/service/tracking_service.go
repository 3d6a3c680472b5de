package service

import (
	"context"
	"fmt"

	"github.com/mmcloughlin/geohash"
	"github.com/rs/zerolog"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/ports"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/geo"
)

// geohashPrecision 6 is a ~1.2km cell, enough to cluster map markers per hub.
const geohashPrecision = 6

type TrackingService struct {
	repo     ports.PackageRepository
	resolver ports.LocationResolver
	logger   zerolog.Logger
}

func NewTrackingService(repo ports.PackageRepository, resolver ports.LocationResolver, logger zerolog.Logger) *TrackingService {
	return &TrackingService{
		repo:     repo,
		resolver: resolver,
		logger:   logger.With().Str("component", "tracking_service").Logger(),
	}
}

// Track loads a package and attaches coordinates to its history and current
// location. Locations that cannot be resolved are left without coordinates.
func (s *TrackingService) Track(ctx context.Context, trackingNumber string) (*ports.TrackingView, error) {
	pkg, err := s.repo.FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("track package: %w", err)
	}

	coords := map[string]domain.Coordinate{}
	if locs := pkg.Locations(); len(locs) > 0 {
		coords = s.resolver.ResolveAll(ctx, locs)
	}

	history := make([]ports.TrackedHistoryItem, len(pkg.History))
	for i, h := range pkg.History {
		history[i] = ports.TrackedHistoryItem{
			Status:      h.Status,
			Location:    h.Location,
			Description: h.Description,
			Timestamp:   h.Timestamp,
			Coordinates: locate(coords, h.Location),
		}
	}

	view := &ports.TrackingView{
		TrackingNumber: pkg.TrackingNumber,
		Sender:         pkg.Sender,
		Receiver:       pkg.Receiver,
		ShipmentInfo:   pkg.ShipmentInfo,
		Status:         string(pkg.Status),
		Location:       pkg.Location,
		Coordinates:    locate(coords, pkg.Location),
		History:        history,
	}

	if current, ok := coords[pkg.Location]; ok {
		if dest, ok := s.resolver.Cached(pkg.ShipmentInfo.Destination); ok {
			km := geo.DistanceKm(current, dest)
			view.RemainingKm = &km
		}
	}

	s.logger.Debug().
		Str("tracking_number", trackingNumber).
		Int("locations", len(pkg.Locations())).
		Int("resolved", len(coords)).
		Msg("tracking view built")
	return view, nil
}

func locate(coords map[string]domain.Coordinate, location string) *ports.LocatedPoint {
	c, ok := coords[location]
	if !ok {
		return nil
	}
	return &ports.LocatedPoint{
		Lat:     c.Lat,
		Lng:     c.Lng,
		Geohash: geohash.EncodeWithPrecision(c.Lat, c.Lng, geohashPrecision),
	}
}
