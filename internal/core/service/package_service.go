package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/ports"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/infrastructure/metrics"
)

const (
	trackingPrefix   = "SC"
	trackingLength   = 10
	trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	registeredDescription = "Shipment information received and registered."

	releaseTimeout = 2 * time.Second
)

// IdempotencyStore abstracts the request deduplication store (Redis).
type IdempotencyStore interface {
	// Claim records key and reports true if it was not seen before.
	Claim(ctx context.Context, scope, key string) (bool, error)
	// Release forgets key so a later Claim succeeds again.
	Release(ctx context.Context, scope, key string) error
}

type PackageService struct {
	repo     ports.PackageRepository
	events   ports.StatusEventRepository
	resolver ports.LocationResolver
	warmer   ports.CacheWarmer
	dedup    IdempotencyStore
	logger   zerolog.Logger
	now      func() time.Time
}

func NewPackageService(
	repo ports.PackageRepository,
	events ports.StatusEventRepository,
	resolver ports.LocationResolver,
	warmer ports.CacheWarmer,
	dedup IdempotencyStore,
	logger zerolog.Logger,
) *PackageService {
	return &PackageService{
		repo:     repo,
		events:   events,
		resolver: resolver,
		warmer:   warmer,
		dedup:    dedup,
		logger:   logger.With().Str("component", "package_service").Logger(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Register creates a pending package located at its origin, with a single
// "Package Registered" history entry.
func (s *PackageService) Register(ctx context.Context, in ports.RegisterPackageInput) (*ports.RegisterPackageResult, error) {
	now := s.now()
	pkg := &domain.Package{
		TrackingNumber: generateTrackingNumber(),
		Sender:         in.Sender,
		Receiver:       in.Receiver,
		ShipmentInfo: domain.ShipmentInfo{
			Origin:      in.Origin,
			Destination: in.Destination,
			WeightKg:    in.WeightKg,
			ETA:         in.ETA.UTC(),
		},
		Status:   domain.StatusPending,
		Location: in.Origin,
		History: []domain.HistoryEntry{{
			Status:      domain.RegisteredStatusLabel,
			Location:    in.Origin,
			Description: registeredDescription,
			Timestamp:   now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, pkg); err != nil {
		s.logger.Error().Err(err).Msg("failed to register package")
		return nil, fmt.Errorf("register package: %w", err)
	}

	metrics.PackagesRegisteredTotal.Inc()
	s.logger.Info().Str("tracking_number", pkg.TrackingNumber).Msg("package registered")

	if s.warmer != nil {
		s.warmer.Warm(pkg.TrackingNumber, []string{in.Origin, in.Destination})
	}

	return &ports.RegisterPackageResult{
		TrackingNumber: pkg.TrackingNumber,
		Status:         pkg.Status,
		CreatedAt:      pkg.CreatedAt,
	}, nil
}

// UpdateStatus appends a status/location event to a package's history.
func (s *PackageService) UpdateStatus(ctx context.Context, in ports.UpdateStatusInput) error {
	newStatus := domain.PackageStatus(in.Status)
	if !newStatus.Valid() {
		return fmt.Errorf("update status: %w: %q", domain.ErrInvalidStatus, in.Status)
	}

	// 1. Idempotency check. A failing store never blocks the update, and a
	// claimed key is released again if the update is not applied.
	claimed, err := s.claim(ctx, in)
	if err != nil {
		return err
	}

	// 2. Terminal-state check and atomic history append.
	entry, err := s.applyStatus(ctx, in, newStatus)
	if err != nil {
		if claimed {
			s.release(in)
		}
		return fmt.Errorf("update status: %w", err)
	}
	metrics.StatusUpdatesTotal.WithLabelValues(string(newStatus)).Inc()

	// 3. Audit trail (non-fatal on failure).
	if s.events != nil {
		event := &domain.StatusEvent{
			EventID:        uuid.NewString(),
			TrackingNumber: in.TrackingNumber,
			Status:         newStatus,
			Location:       in.Location,
			Description:    in.Description,
			Timestamp:      entry.Timestamp,
		}
		if s.resolver != nil {
			if c, ok := s.resolver.Cached(in.Location); ok {
				event.Coordinate = &c
			}
		}
		if err := s.events.InsertEvent(ctx, event); err != nil {
			s.logger.Warn().Err(err).Str("tracking_number", in.TrackingNumber).Msg("failed to insert audit event")
		}
	}

	if s.warmer != nil {
		s.warmer.Warm(in.TrackingNumber, []string{in.Location})
	}

	s.logger.Info().
		Str("tracking_number", in.TrackingNumber).
		Str("status", in.Status).
		Str("location", in.Location).
		Msg("package status updated")
	return nil
}

// List returns every package ordered by tracking number.
func (s *PackageService) List(ctx context.Context) ([]*domain.Package, error) {
	pkgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	return pkgs, nil
}

// UpdateDetails applies a partial update of sender, receiver or shipment info.
func (s *PackageService) UpdateDetails(ctx context.Context, trackingNumber string, patch ports.PackageDetailsPatch) error {
	if patch.Empty() {
		return domain.ErrNothingToUpdate
	}
	if patch.ShipmentInfo != nil {
		patch.ShipmentInfo.ETA = patch.ShipmentInfo.ETA.UTC()
	}
	if err := s.repo.UpdateDetails(ctx, trackingNumber, patch); err != nil {
		return fmt.Errorf("update details: %w", err)
	}
	s.logger.Info().Str("tracking_number", trackingNumber).Msg("package details updated")

	if s.warmer != nil && patch.ShipmentInfo != nil {
		s.warmer.Warm(trackingNumber, []string{patch.ShipmentInfo.Origin, patch.ShipmentInfo.Destination})
	}
	return nil
}

func (s *PackageService) applyStatus(ctx context.Context, in ports.UpdateStatusInput, status domain.PackageStatus) (domain.HistoryEntry, error) {
	pkg, err := s.repo.FindByTrackingNumber(ctx, in.TrackingNumber)
	if err != nil {
		return domain.HistoryEntry{}, err
	}
	if !pkg.Status.CanTransitionTo(status) {
		if !in.Override {
			return domain.HistoryEntry{}, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, pkg.Status, status)
		}
		s.logger.Warn().
			Str("tracking_number", in.TrackingNumber).
			Str("from", string(pkg.Status)).
			Str("to", string(status)).
			Msg("terminal status overridden")
	}

	entry := domain.HistoryEntry{
		Status:      string(status),
		Location:    in.Location,
		Description: in.Description,
		Timestamp:   s.now(),
	}
	if err := s.repo.AppendHistory(ctx, in.TrackingNumber, status, entry, in.Override); err != nil {
		return domain.HistoryEntry{}, err
	}
	return entry, nil
}

// claim records the idempotency key of in. It reports whether a key was
// recorded, so a failed update can hand it back.
func (s *PackageService) claim(ctx context.Context, in ports.UpdateStatusInput) (bool, error) {
	if in.IdempotencyKey == "" || s.dedup == nil {
		return false, nil
	}
	fresh, err := s.dedup.Claim(ctx, idempotencyScope(in.TrackingNumber), in.IdempotencyKey)
	switch {
	case err != nil:
		s.logger.Warn().Err(err).Str("tracking_number", in.TrackingNumber).Msg("idempotency check failed, processing anyway")
		return false, nil
	case !fresh:
		metrics.StatusUpdateDedupTotal.WithLabelValues("hit").Inc()
		return false, fmt.Errorf("update status: %w", domain.ErrDuplicateRequest)
	}
	metrics.StatusUpdateDedupTotal.WithLabelValues("miss").Inc()
	return true, nil
}

// release forgets the idempotency key of a failed update so the client can retry.
func (s *PackageService) release(in ports.UpdateStatusInput) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()
	if err := s.dedup.Release(ctx, idempotencyScope(in.TrackingNumber), in.IdempotencyKey); err != nil {
		s.logger.Warn().Err(err).Str("tracking_number", in.TrackingNumber).Msg("idempotency key release failed")
	}
}

func idempotencyScope(trackingNumber string) string {
	return "status:" + trackingNumber
}

// Delete removes a package.
func (s *PackageService) Delete(ctx context.Context, trackingNumber string) error {
	if err := s.repo.Delete(ctx, trackingNumber); err != nil {
		return fmt.Errorf("delete package: %w", err)
	}
	s.logger.Info().Str("tracking_number", trackingNumber).Msg("package deleted")
	return nil
}

// generateTrackingNumber returns a tracking number in the format SCXXXXXXXXXX.
func generateTrackingNumber() string {
	tn, err := readTrackingNumber(rand.Reader)
	if err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%s%010d", trackingPrefix, time.Now().UnixNano()%1e10)
	}
	return tn
}

// readTrackingNumber draws symbols from r. Bytes at or above the largest
// multiple of the alphabet size are discarded so every symbol is equally likely.
func readTrackingNumber(r io.Reader) (string, error) {
	limit := byte(256 - 256%len(trackingAlphabet))

	var sb strings.Builder
	sb.Grow(len(trackingPrefix) + trackingLength)
	sb.WriteString(trackingPrefix)

	buf := make([]byte, trackingLength)
	for n := 0; n < trackingLength; {
		if _, err := io.ReadFull(r, buf[:trackingLength-n]); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, v := range buf[:trackingLength-n] {
			if v >= limit {
				continue
			}
			sb.WriteByte(trackingAlphabet[int(v)%len(trackingAlphabet)])
			n++
		}
	}
	return sb.String(), nil
}
