package domain

import (
	"errors"
	"time"
)

// PackageStatus represents the lifecycle state of a package.
type PackageStatus string

const (
	StatusPending        PackageStatus = "pending"
	StatusInTransit      PackageStatus = "in-transit"
	StatusOutForDelivery PackageStatus = "out-for-delivery"
	StatusDelivered      PackageStatus = "delivered"
	StatusOnHold         PackageStatus = "on-hold"
	StatusCancelled      PackageStatus = "cancelled"
)

// RegisteredStatusLabel is the history label of the entry written on registration.
const RegisteredStatusLabel = "Package Registered"

var (
	ErrPackageNotFound   = errors.New("package not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidStatus     = errors.New("unknown package status")
	ErrNothingToUpdate   = errors.New("no updatable fields provided")
	ErrDuplicateRequest  = errors.New("duplicate request")
	ErrForbidden         = errors.New("access forbidden")
)

var knownStatuses = map[PackageStatus]struct{}{
	StatusPending:        {},
	StatusInTransit:      {},
	StatusOutForDelivery: {},
	StatusDelivered:      {},
	StatusOnHold:         {},
	StatusCancelled:      {},
}

// Valid reports whether s is one of the known statuses.
func (s PackageStatus) Valid() bool {
	_, ok := knownStatuses[s]
	return ok
}

// Terminal reports whether no further updates are accepted after s.
func (s PackageStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether a package in status s may move to next.
// Any known status is reachable from a non-terminal one, including itself
// (an operator may log a new location without changing status).
func (s PackageStatus) CanTransitionTo(next PackageStatus) bool {
	return next.Valid() && !s.Terminal()
}

// Party is a sender or receiver.
type Party struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ShipmentInfo holds routing and physical details of a package.
type ShipmentInfo struct {
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	WeightKg    float64   `json:"weight"`
	ETA         time.Time `json:"eta"`
}

// HistoryEntry is a single location-tagged event in a package's history.
type HistoryEntry struct {
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// Package is the aggregate root tracked by the system.
type Package struct {
	TrackingNumber string         `json:"tracking_number"`
	Sender         Party          `json:"sender"`
	Receiver       Party          `json:"receiver"`
	ShipmentInfo   ShipmentInfo   `json:"shipment_info"`
	Status         PackageStatus  `json:"status"`
	Location       string         `json:"location"`
	History        []HistoryEntry `json:"history"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Locations returns the distinct non-empty locations of the history in order
// of first appearance, followed by the current location if not already seen.
func (p *Package) Locations() []string {
	seen := make(map[string]struct{}, len(p.History)+1)
	out := make([]string, 0, len(p.History)+1)
	add := func(loc string) {
		if loc == "" {
			return
		}
		if _, ok := seen[loc]; ok {
			return
		}
		seen[loc] = struct{}{}
		out = append(out, loc)
	}
	for _, h := range p.History {
		add(h.Location)
	}
	add(p.Location)
	return out
}
