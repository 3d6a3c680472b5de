package ports

import (
	"context"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
)

// ContactRepository stores contact form submissions.
type ContactRepository interface {
	Insert(ctx context.Context, msg *domain.ContactMessage) (int64, error)
}

// ContactInput is the DTO passed from the transport layer to ContactService.
type ContactInput struct {
	Name    string
	Email   string
	Message string
}

// ContactService handles contact form submissions.
type ContactService interface {
	Submit(ctx context.Context, in ContactInput) (*domain.ContactMessage, error)
}
