package queue

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/ports"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/infrastructure/metrics"
)

const (
	defaultWorkers = 2
	channelBuffer  = 64
)

// WarmRequest asks for the locations of one package to be geocoded ahead of
// the next tracking lookup.
type WarmRequest struct {
	TrackingNumber string
	Locations      []string
}

// Warmer routes warm requests to a fixed set of workers using consistent
// hashing on the tracking number. Workers resolve sequentially, so all
// provider traffic still goes through the resolver's rate limiter.
type Warmer struct {
	workers  []chan WarmRequest
	resolver ports.LocationResolver
	log      zerolog.Logger
	wg       sync.WaitGroup
}

// NewWarmer creates a Warmer with numWorkers sharded workers, each with a
// queue of queueSize. Non-positive values fall back to the defaults.
func NewWarmer(numWorkers, queueSize int, resolver ports.LocationResolver, log zerolog.Logger) *Warmer {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if queueSize <= 0 {
		queueSize = channelBuffer
	}
	w := &Warmer{
		workers:  make([]chan WarmRequest, numWorkers),
		resolver: resolver,
		log:      log.With().Str("component", "cache_warmer").Logger(),
	}
	for i := range w.workers {
		w.workers[i] = make(chan WarmRequest, queueSize)
	}
	return w
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (w *Warmer) Start(ctx context.Context) {
	for i, ch := range w.workers {
		w.wg.Add(1)
		go w.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (w *Warmer) Wait() {
	w.wg.Wait()
}

// Warm enqueues the locations of trackingNumber. It never blocks: when the
// shard queue is full the request is dropped.
func (w *Warmer) Warm(trackingNumber string, locations []string) {
	if len(locations) == 0 {
		return
	}
	req := WarmRequest{TrackingNumber: trackingNumber, Locations: locations}
	select {
	case w.workers[w.shardIndex(trackingNumber)] <- req:
	default:
		metrics.WarmerDroppedTotal.Inc()
		w.log.Warn().Str("tracking_number", trackingNumber).Msg("warm queue full, request dropped")
	}
}

// shardIndex maps a tracking number deterministically to a worker index.
func (w *Warmer) shardIndex(trackingNumber string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(trackingNumber))
	return int(h.Sum32() % uint32(len(w.workers)))
}

func (w *Warmer) runWorker(ctx context.Context, id int, ch <-chan WarmRequest) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-ch:
			got := w.resolver.ResolveAll(ctx, req.Locations)
			w.log.Debug().
				Str("tracking_number", req.TrackingNumber).
				Int("worker_id", id).
				Int("requested", len(req.Locations)).
				Int("resolved", len(got)).
				Msg("locations warmed")
		}
	}
}
