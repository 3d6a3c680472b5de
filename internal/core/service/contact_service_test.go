package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/ports"
)

func TestContactService_Submit(t *testing.T) {
	repo := &stubContactRepo{}
	svc := NewContactService(repo, zerolog.Nop())

	msg, err := svc.Submit(context.Background(), ports.ContactInput{Name: "Ann", Email: "ann@example.com", Message: "Where is my parcel?"})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if msg.ID != 1 || msg.CreatedAt.IsZero() {
		t.Fatalf("unexpected message: %+v", msg)
	}
	if len(repo.stored) != 1 {
		t.Fatalf("expected message to be stored")
	}
}

func TestContactService_Submit_RepoError(t *testing.T) {
	svc := NewContactService(&stubContactRepo{err: errBoom}, zerolog.Nop())

	if _, err := svc.Submit(context.Background(), ports.ContactInput{Name: "Ann"}); !errors.Is(err, errBoom) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}
