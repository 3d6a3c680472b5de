package ports

import (
	"context"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
)

// AuthRepository defines the interface for back-office user persistence.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
