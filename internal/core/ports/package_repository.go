package ports

import (
	"context"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
)

// PackageDetailsPatch carries the optional sections of an admin detail update.
// Nil sections are left untouched.
type PackageDetailsPatch struct {
	Sender       *domain.Party
	Receiver     *domain.Party
	ShipmentInfo *domain.ShipmentInfo
}

// Empty reports whether the patch carries no section at all.
func (p PackageDetailsPatch) Empty() bool {
	return p.Sender == nil && p.Receiver == nil && p.ShipmentInfo == nil
}

// PackageRepository defines persistence operations for packages.
type PackageRepository interface {
	Create(ctx context.Context, p *domain.Package) error
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Package, error)
	// List returns every package ordered by tracking number.
	List(ctx context.Context) ([]*domain.Package, error)
	// AppendHistory atomically sets status and current location and appends
	// entry to the history. Returns domain.ErrPackageNotFound when no row matched.
	AppendHistory(ctx context.Context, trackingNumber string, status domain.PackageStatus, entry domain.HistoryEntry, override bool) error
	UpdateDetails(ctx context.Context, trackingNumber string, patch PackageDetailsPatch) error
	Delete(ctx context.Context, trackingNumber string) error
}
