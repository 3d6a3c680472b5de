package ports

import (
	"context"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
)

// StatusEventRepository persists the status-change audit trail.
type StatusEventRepository interface {
	InsertEvent(ctx context.Context, event *domain.StatusEvent) error
}
