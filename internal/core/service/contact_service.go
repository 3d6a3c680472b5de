package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/ports"
)

type ContactService struct {
	repo   ports.ContactRepository
	logger zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, logger zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, logger: logger}
}

// Submit stores a contact form message.
func (s *ContactService) Submit(ctx context.Context, in ports.ContactInput) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}
	id, err := s.repo.Insert(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("submit contact message: %w", err)
	}
	msg.ID = id

	s.logger.Info().Int64("id", id).Str("email", in.Email).Msg("contact message received")
	return msg, nil
}
