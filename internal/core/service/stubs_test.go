package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/ports"
)

type stubPackageRepo struct {
	mu        sync.Mutex
	pkgs      map[string]*domain.Package
	createErr error
	appendErr error
}

func newStubPackageRepo() *stubPackageRepo {
	return &stubPackageRepo{pkgs: make(map[string]*domain.Package)}
}

func clonePackage(p *domain.Package) *domain.Package {
	c := *p
	c.History = append([]domain.HistoryEntry(nil), p.History...)
	return &c
}

func (r *stubPackageRepo) Create(_ context.Context, p *domain.Package) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.pkgs[p.TrackingNumber] = clonePackage(p)
	return nil
}

func (r *stubPackageRepo) FindByTrackingNumber(_ context.Context, tn string) (*domain.Package, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pkgs[tn]
	if !ok {
		return nil, domain.ErrPackageNotFound
	}
	return clonePackage(p), nil
}

func (r *stubPackageRepo) List(_ context.Context) ([]*domain.Package, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Package, 0, len(r.pkgs))
	for _, p := range r.pkgs {
		out = append(out, clonePackage(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TrackingNumber < out[j].TrackingNumber })
	return out, nil
}

func (r *stubPackageRepo) AppendHistory(_ context.Context, tn string, status domain.PackageStatus, entry domain.HistoryEntry, override bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.appendErr != nil {
		return r.appendErr
	}
	p, ok := r.pkgs[tn]
	if !ok {
		return domain.ErrPackageNotFound
	}
	if !override && p.Status.Terminal() {
		return domain.ErrInvalidTransition
	}
	p.Status = status
	p.Location = entry.Location
	p.History = append(p.History, entry)
	p.UpdatedAt = entry.Timestamp
	return nil
}

func (r *stubPackageRepo) UpdateDetails(_ context.Context, tn string, patch ports.PackageDetailsPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pkgs[tn]
	if !ok {
		return domain.ErrPackageNotFound
	}
	if patch.Sender != nil {
		p.Sender = *patch.Sender
	}
	if patch.Receiver != nil {
		p.Receiver = *patch.Receiver
	}
	if patch.ShipmentInfo != nil {
		p.ShipmentInfo = *patch.ShipmentInfo
	}
	return nil
}

func (r *stubPackageRepo) Delete(_ context.Context, tn string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pkgs[tn]; !ok {
		return domain.ErrPackageNotFound
	}
	delete(r.pkgs, tn)
	return nil
}

type stubEventRepo struct {
	events []*domain.StatusEvent
	err    error
}

func (r *stubEventRepo) InsertEvent(_ context.Context, e *domain.StatusEvent) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, e)
	return nil
}

type stubResolver struct {
	known   map[string]domain.Coordinate
	batches [][]string
}

func (r *stubResolver) ResolveAll(_ context.Context, names []string) map[string]domain.Coordinate {
	r.batches = append(r.batches, names)
	out := make(map[string]domain.Coordinate)
	for _, n := range names {
		if c, ok := r.known[n]; ok {
			out[n] = c
		}
	}
	return out
}

func (r *stubResolver) Cached(name string) (domain.Coordinate, bool) {
	c, ok := r.known[name]
	return c, ok
}

type stubWarmer struct {
	calls [][]string
}

func (w *stubWarmer) Warm(_ string, locations []string) {
	w.calls = append(w.calls, locations)
}

type stubDedup struct {
	seen map[string]bool
	err  error
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func (d *stubDedup) Claim(_ context.Context, scope, key string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	k := scope + "|" + key
	if d.seen[k] {
		return false, nil
	}
	d.seen[k] = true
	return true, nil
}

func (d *stubDedup) Release(_ context.Context, scope, key string) error {
	delete(d.seen, scope+"|"+key)
	return nil
}

type stubContactRepo struct {
	nextID int64
	stored []*domain.ContactMessage
	err    error
}

func (r *stubContactRepo) Insert(_ context.Context, msg *domain.ContactMessage) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.nextID++
	r.stored = append(r.stored, msg)
	return r.nextID, nil
}

var errBoom = errors.New("boom")
