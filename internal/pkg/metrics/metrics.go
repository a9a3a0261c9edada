// Package metrics defines and registers all custom Prometheus metrics for the
// delivery order price service. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dopc"

// ── Quote metrics ─────────────────────────────────────────────────────────────

// Outcome label values for QuotesTotal.
const (
	OutcomePriced              = "priced"
	OutcomeInvalidInput        = "invalid_input"
	OutcomeVenueNotFound       = "venue_not_found"
	OutcomeDeliveryUnavailable = "delivery_unavailable"
	OutcomeError               = "error"
)

// QuotesTotal counts price requests by outcome.
// Label:
//   - outcome: one of the Outcome* constants
var QuotesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_total",
		Help:      "Total number of delivery order price requests, by outcome.",
	},
	[]string{"outcome"},
)

// DeliveryFee observes the delivery fee of priced orders in minor currency units.
var DeliveryFee = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "delivery_fee_minor_units",
		Help:      "Delivery fee of priced orders, in minor currency units.",
		Buckets:   []float64{100, 200, 300, 500, 750, 1000, 1500, 2000, 3000, 5000},
	},
)

// DeliveryDistance observes the straight-line delivery distance of priced orders.
var DeliveryDistance = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "delivery_distance_meters",
		Help:      "Straight-line delivery distance of priced orders, in meters.",
		Buckets:   prometheus.ExponentialBuckets(250, 2, 8), // 250m … 32km
	},
)

// ── Venue provider metrics ────────────────────────────────────────────────────

// VenueFetchDuration measures a single document fetch from the venue provider,
// including retries.
// Labels:
//   - document: "static" or "dynamic"
//   - result: "ok", "not_found", "malformed" or "error"
var VenueFetchDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "venue_fetch_duration_seconds",
		Help:      "Duration of venue document fetches from the provider.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"document", "result"},
)

// VenueFetchRetriesTotal counts retried venue document requests.
// Label:
//   - document: "static" or "dynamic"
var VenueFetchRetriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "venue_fetch_retries_total",
		Help:      "Total number of retried venue document requests.",
	},
	[]string{"document"},
)
