// Package metrics defines and registers all custom Prometheus metrics for the
// SwiftCargo tracking service. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry on import
// (promauto); the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "swiftcargo"

// ── Geocoding metrics ─────────────────────────────────────────────────────────

// GeocodeCacheLookupsTotal counts location cache lookups.
// Label:
//   - result: "hit" or "miss"
var GeocodeCacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geocode_cache_lookups_total",
		Help:      "Total number of location cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// GeocodeProviderCallsTotal counts calls to the external geocoding provider.
// Label:
//   - outcome: "match", "no_match" or "error"
var GeocodeProviderCallsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geocode_provider_calls_total",
		Help:      "Total number of external geocoding calls, by outcome.",
	},
	[]string{"outcome"},
)

// GeocodeProviderDuration measures the latency of a single provider call.
var GeocodeProviderDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "geocode_provider_duration_seconds",
		Help:      "Duration of external geocoding calls.",
		Buckets:   prometheus.DefBuckets,
	},
)

// GeocodeResolutionsTotal counts location resolutions.
// Label:
//   - result: "resolved" or "unresolved"
var GeocodeResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geocode_resolutions_total",
		Help:      "Total number of location resolutions, by result.",
	},
	[]string{"result"},
)

// WarmerDroppedTotal counts warm-up requests dropped because the worker queue was full.
var WarmerDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geocode_warmer_dropped_total",
		Help:      "Total number of cache warm-up requests dropped on a full queue.",
	},
)

// ── Package metrics ───────────────────────────────────────────────────────────

// PackagesRegisteredTotal counts newly registered packages.
var PackagesRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "packages_registered_total",
		Help:      "Total number of packages registered.",
	},
)

// StatusUpdatesTotal counts applied status updates.
// Label:
//   - status: the new package status (e.g. "in-transit")
var StatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "package_status_updates_total",
		Help:      "Total number of package status updates applied, by status.",
	},
	[]string{"status"},
)

// StatusUpdateDedupTotal counts idempotency decisions on status updates.
// Label:
//   - result: "hit" (duplicate, rejected) or "miss" (new request)
var StatusUpdateDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "package_status_update_dedup_total",
		Help:      "Total number of status-update idempotency checks, by result (hit/miss).",
	},
	[]string{"result"},
)
