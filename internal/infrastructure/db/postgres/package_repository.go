package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/ports"
)

const uniqueViolation = "23505"

// PackageRepository stores packages in the packages table. Parties, shipment
// info and history are jsonb columns.
type PackageRepository struct {
	pool *pgxpool.Pool
}

func NewPackageRepository(pool *pgxpool.Pool) *PackageRepository {
	return &PackageRepository{pool: pool}
}

const packageColumns = `tracking_number, sender, receiver, shipment_info, status, location, history, created_at, updated_at`

func (r *PackageRepository) Create(ctx context.Context, p *domain.Package) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO packages (`+packageColumns+`)
		VALUES ($1, $2::jsonb, $3::jsonb, $4::jsonb, $5, $6, $7::jsonb, $8, $9)`,
		p.TrackingNumber, p.Sender, p.Receiver, p.ShipmentInfo,
		string(p.Status), p.Location, p.History, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("postgres: tracking number %s already taken: %w", p.TrackingNumber, err)
		}
		return fmt.Errorf("postgres: insert package: %w", err)
	}
	return nil
}

func (r *PackageRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Package, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `SELECT `+packageColumns+` FROM packages WHERE tracking_number = $1`, trackingNumber)
	p, err := scanPackage(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: find package: %w", err)
	}
	return p, nil
}

func (r *PackageRepository) List(ctx context.Context) ([]*domain.Package, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `SELECT `+packageColumns+` FROM packages ORDER BY tracking_number`)
	if err != nil {
		return nil, fmt.Errorf("postgres: list packages: %w", err)
	}
	defer rows.Close()

	var out []*domain.Package
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: scan package: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// AppendHistory updates status and location and appends entry in a single
// statement. Packages already in a terminal status are left untouched.
func (r *PackageRepository) AppendHistory(ctx context.Context, trackingNumber string, status domain.PackageStatus, entry domain.HistoryEntry, override bool) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `
		UPDATE packages
		SET status = $1,
		    location = $2,
		    history = history || $3::jsonb,
		    updated_at = $4
		WHERE tracking_number = $5
		  AND ($6 OR status NOT IN ($7, $8))`,
		string(status), entry.Location, []domain.HistoryEntry{entry}, entry.Timestamp, trackingNumber,
		override, string(domain.StatusDelivered), string(domain.StatusCancelled),
	)
	if err != nil {
		return fmt.Errorf("postgres: append history: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	exists, err := r.exists(ctx, trackingNumber)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrPackageNotFound
	}
	return domain.ErrInvalidTransition
}

func (r *PackageRepository) UpdateDetails(ctx context.Context, trackingNumber string, patch ports.PackageDetailsPatch) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	sql, args := detailsUpdate(trackingNumber, patch)
	if sql == "" {
		return domain.ErrNothingToUpdate
	}
	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("postgres: update package details: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPackageNotFound
	}
	return nil
}

func (r *PackageRepository) Delete(ctx context.Context, trackingNumber string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM packages WHERE tracking_number = $1`, trackingNumber)
	if err != nil {
		return fmt.Errorf("postgres: delete package: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPackageNotFound
	}
	return nil
}

func (r *PackageRepository) exists(ctx context.Context, trackingNumber string) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM packages WHERE tracking_number = $1)`, trackingNumber).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("postgres: package exists: %w", err)
	}
	return ok, nil
}

// detailsUpdate builds the UPDATE statement for the sections present in patch.
func detailsUpdate(trackingNumber string, patch ports.PackageDetailsPatch) (string, []any) {
	var (
		sets []string
		args []any
	)
	add := func(column string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d::jsonb", column, len(args)))
	}
	if patch.Sender != nil {
		add("sender", *patch.Sender)
	}
	if patch.Receiver != nil {
		add("receiver", *patch.Receiver)
	}
	if patch.ShipmentInfo != nil {
		add("shipment_info", *patch.ShipmentInfo)
	}
	if len(sets) == 0 {
		return "", nil
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, trackingNumber)
	return fmt.Sprintf("UPDATE packages SET %s WHERE tracking_number = $%d", strings.Join(sets, ", "), len(args)), args
}

func scanPackage(row pgx.Row) (*domain.Package, error) {
	var (
		p      domain.Package
		status string
	)
	if err := row.Scan(
		&p.TrackingNumber, &p.Sender, &p.Receiver, &p.ShipmentInfo,
		&status, &p.Location, &p.History, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Status = domain.PackageStatus(status)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return &p, nil
}
