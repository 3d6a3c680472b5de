package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
)

type recordingResolver struct {
	mu      sync.Mutex
	batches [][]string
	done    chan struct{}
	block   chan struct{}
}

func (r *recordingResolver) ResolveAll(_ context.Context, names []string) map[string]domain.Coordinate {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	r.batches = append(r.batches, names)
	r.mu.Unlock()
	if r.done != nil {
		r.done <- struct{}{}
	}
	return map[string]domain.Coordinate{}
}

func (r *recordingResolver) Cached(string) (domain.Coordinate, bool) {
	return domain.Coordinate{}, false
}

func TestWarmer_ResolvesEnqueuedLocations(t *testing.T) {
	res := &recordingResolver{done: make(chan struct{}, 2)}
	w := NewWarmer(2, 4, res, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)

	w.Warm("SCAAAAAAAAAA", []string{"London", "Paris"})
	w.Warm("SCBBBBBBBBBB", []string{"Tokyo"})

	for i := 0; i < 2; i++ {
		select {
		case <-res.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for warm request %d", i)
		}
	}
	cancel()
	w.Wait()

	res.mu.Lock()
	defer res.mu.Unlock()
	if len(res.batches) != 2 {
		t.Fatalf("expected 2 batches, got %d", len(res.batches))
	}
}

func TestWarmer_DropsWhenFull(t *testing.T) {
	res := &recordingResolver{}
	w := NewWarmer(1, 1, res, zerolog.Nop())

	// Not started: the single slot fills and the next request is dropped.
	w.Warm("SCAAAAAAAAAA", []string{"London"})
	done := make(chan struct{})
	go func() {
		w.Warm("SCAAAAAAAAAA", []string{"Paris"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Warm blocked on a full queue")
	}
	if got := len(w.workers[0]); got != 1 {
		t.Fatalf("expected 1 queued request, got %d", got)
	}
}

func TestWarmer_IgnoresEmptyRequests(t *testing.T) {
	w := NewWarmer(1, 1, &recordingResolver{}, zerolog.Nop())
	w.Warm("SCAAAAAAAAAA", nil)
	if got := len(w.workers[0]); got != 0 {
		t.Fatalf("expected empty queue, got %d", got)
	}
}

func TestWarmer_ShardIndexIsStable(t *testing.T) {
	w := NewWarmer(4, 1, &recordingResolver{}, zerolog.Nop())
	a := w.shardIndex("SC1234567890")
	for i := 0; i < 10; i++ {
		if w.shardIndex("SC1234567890") != a {
			t.Fatalf("shard index changed between calls")
		}
	}
	if a < 0 || a >= 4 {
		t.Fatalf("shard index out of range: %d", a)
	}
}
