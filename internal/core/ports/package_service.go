package ports

import (
	"context"
	"time"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
)

// RegisterPackageInput carries all data needed to register a new package.
type RegisterPackageInput struct {
	Sender      domain.Party
	Receiver    domain.Party
	Origin      string
	Destination string
	WeightKg    float64
	ETA         time.Time
}

// RegisterPackageResult is returned after registering a package.
type RegisterPackageResult struct {
	TrackingNumber string
	Status         domain.PackageStatus
	CreatedAt      time.Time
}

// UpdateStatusInput carries a status update issued by an operator.
type UpdateStatusInput struct {
	TrackingNumber string
	Status         string
	Location       string
	Description    string
	// IdempotencyKey, when set, makes retries of the same update a no-op.
	IdempotencyKey string
	// Override lets an admin move a package out of a terminal status.
	Override bool
}

// PackageService defines the admin use cases on packages.
type PackageService interface {
	Register(ctx context.Context, in RegisterPackageInput) (*RegisterPackageResult, error)
	UpdateStatus(ctx context.Context, in UpdateStatusInput) error
	List(ctx context.Context) ([]*domain.Package, error)
	UpdateDetails(ctx context.Context, trackingNumber string, patch PackageDetailsPatch) error
	Delete(ctx context.Context, trackingNumber string) error
}
