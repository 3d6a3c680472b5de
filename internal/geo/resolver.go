package geo

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/infrastructure/metrics"
)

const (
	// DefaultMinInterval is the minimum spacing between two provider calls.
	DefaultMinInterval = 100 * time.Millisecond

	// minSegmentLen is the shortest comma segment worth a provider call.
	minSegmentLen = 3
)

// Resolver maps free-text location names to coordinates. It consults the
// cache first and falls back to the provider through a fixed sequence of
// query variants. Provider calls are serialized through a rate limiter.
type Resolver struct {
	cache    *LocationCache
	provider Provider
	limiter  *rate.Limiter
	limit    int
	log      zerolog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithMinInterval sets the minimum delay between consecutive provider calls.
// Zero disables throttling.
func WithMinInterval(d time.Duration) ResolverOption {
	return func(r *Resolver) {
		if d <= 0 {
			r.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		r.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// WithResultLimit sets how many candidates are requested per provider call.
func WithResultLimit(n int) ResolverOption {
	return func(r *Resolver) {
		if n > 0 && n <= MaxResultLimit {
			r.limit = n
		}
	}
}

// NewResolver creates a Resolver over cache and provider.
func NewResolver(cache *LocationCache, provider Provider, log zerolog.Logger, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		cache:    cache,
		provider: provider,
		limiter:  rate.NewLimiter(rate.Every(DefaultMinInterval), 1),
		limit:    MaxResultLimit,
		log:      log.With().Str("component", "geo_resolver").Logger(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Cache exposes the underlying location cache.
func (r *Resolver) Cache() *LocationCache {
	return r.cache
}

// Cached looks name up in the cache only; it never calls the provider.
func (r *Resolver) Cached(name string) (domain.Coordinate, bool) {
	c, ok := r.cache.Get(name)
	if ok {
		metrics.GeocodeCacheLookupsTotal.WithLabelValues("hit").Inc()
	} else {
		metrics.GeocodeCacheLookupsTotal.WithLabelValues("miss").Inc()
	}
	return c, ok
}

// Resolve returns the coordinate for name, trying in order: the cache, the
// full name, each comma segment, and the first token. A success from the
// provider is cached under the original name. The second return value is
// false when nothing matched.
func (r *Resolver) Resolve(ctx context.Context, name string) (domain.Coordinate, bool) {
	full := strings.TrimSpace(name)
	if full == "" {
		return domain.Coordinate{}, false
	}

	if c, ok := r.Cached(full); ok {
		metrics.GeocodeResolutionsTotal.WithLabelValues("resolved").Inc()
		return c, true
	}

	tried := make(map[string]struct{})
	for _, q := range queryVariants(full) {
		key := strings.ToLower(q)
		if _, ok := tried[key]; ok {
			continue
		}
		tried[key] = struct{}{}

		c, ok := r.geocode(ctx, q)
		if !ok {
			if ctx.Err() != nil {
				break
			}
			continue
		}
		r.cache.Put(full, c)
		metrics.GeocodeResolutionsTotal.WithLabelValues("resolved").Inc()
		r.log.Debug().Str("location", full).Str("query", q).
			Float64("lat", c.Lat).Float64("lng", c.Lng).Msg("location resolved")
		return c, true
	}

	metrics.GeocodeResolutionsTotal.WithLabelValues("unresolved").Inc()
	r.log.Warn().Str("location", full).Msg("unable to geocode location")
	return domain.Coordinate{}, false
}

// ResolveAll resolves every distinct non-blank name sequentially and returns
// the successes. Unresolved names are absent from the result.
func (r *Resolver) ResolveAll(ctx context.Context, names []string) map[string]domain.Coordinate {
	out := make(map[string]domain.Coordinate)
	for _, name := range dedupe(names) {
		if ctx.Err() != nil {
			r.log.Debug().Err(ctx.Err()).Int("resolved", len(out)).Msg("batch resolution abandoned")
			break
		}
		if c, ok := r.Resolve(ctx, name); ok {
			out[name] = c
		}
	}
	return out
}

// geocode performs one throttled provider call. Every failure mode is
// reported as a miss.
func (r *Resolver) geocode(ctx context.Context, query string) (domain.Coordinate, bool) {
	if err := r.limiter.Wait(ctx); err != nil {
		return domain.Coordinate{}, false
	}

	start := time.Now()
	candidates, err := r.provider.Search(ctx, query, r.limit)
	metrics.GeocodeProviderDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GeocodeProviderCallsTotal.WithLabelValues("error").Inc()
		r.log.Warn().Err(err).Str("query", query).Msg("geocoding provider call failed")
		return domain.Coordinate{}, false
	}

	best, ok := bestCandidate(query, candidates)
	if !ok {
		metrics.GeocodeProviderCallsTotal.WithLabelValues("no_match").Inc()
		return domain.Coordinate{}, false
	}
	metrics.GeocodeProviderCallsTotal.WithLabelValues("match").Inc()
	return best.Coordinate, true
}

// queryVariants lists the provider queries tried for full, in order.
func queryVariants(full string) []string {
	variants := []string{full}

	var segments []string
	for _, p := range strings.Split(full, ",") {
		if p = strings.TrimSpace(p); p != "" {
			segments = append(segments, p)
		}
	}
	if len(segments) > 1 {
		for _, s := range segments {
			if len([]rune(s)) < minSegmentLen {
				continue
			}
			variants = append(variants, s)
		}
	}

	tokens := strings.FieldsFunc(full, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(tokens) > 0 {
		first := tokens[0]
		if first != full && len([]rune(first)) >= minSegmentLen {
			variants = append(variants, first)
		}
	}
	return variants
}

func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
