package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Movement metrics
	MovementsRecorded *prometheus.CounterVec
	MovementQuantity  *prometheus.HistogramVec
	MovementRejected  *prometheus.CounterVec
	MovementDuration  prometheus.Histogram

	// Item metrics
	ItemsCreated prometheus.Counter

	// Stock level metrics
	LevelRebuilds    prometheus.Counter
	LevelCacheHits   prometheus.Counter
	LevelCacheMisses prometheus.Counter

	// Ledger verification metrics
	ChainVerifications prometheus.Counter
	ChainBreaks        prometheus.Counter

	// Outbox metrics
	EventsPublished *prometheus.CounterVec
	EventsPending   prometheus.Gauge
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Movement metrics
		MovementsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockledger_movements_recorded_total",
				Help: "Total number of stock movements recorded by type",
			},
			[]string{"type"},
		),
		MovementQuantity: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockledger_movement_quantity",
				Help:    "Recorded movement quantities",
				Buckets: []float64{1, 10, 50, 100, 500, 1000, 10000},
			},
			[]string{"type"},
		),
		MovementRejected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockledger_movements_rejected_total",
				Help: "Total number of rejected movements by reason",
			},
			[]string{"reason"},
		),
		MovementDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "stockledger_movement_duration_seconds",
			Help:    "Duration of movement append operations",
			Buckets: prometheus.DefBuckets,
		}),

		// Item metrics
		ItemsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "stockledger_items_created_total",
			Help: "Total number of items created",
		}),

		// Stock level metrics
		LevelRebuilds: promauto.NewCounter(prometheus.CounterOpts{
			Name: "stockledger_level_rebuilds_total",
			Help: "Total number of stock level projections rebuilt from the ledger",
		}),
		LevelCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "stockledger_level_cache_hits_total",
			Help: "Total number of stock level cache hits",
		}),
		LevelCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "stockledger_level_cache_misses_total",
			Help: "Total number of stock level cache misses",
		}),

		// Ledger verification metrics
		ChainVerifications: promauto.NewCounter(prometheus.CounterOpts{
			Name: "stockledger_chain_verifications_total",
			Help: "Total number of ledger chain verification runs",
		}),
		ChainBreaks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "stockledger_chain_breaks_total",
			Help: "Total number of broken balance chains detected",
		}),

		// Outbox metrics
		EventsPublished: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockledger_events_published_total",
				Help: "Total outbox events published by type",
			},
			[]string{"event_type"},
		),
		EventsPending: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "stockledger_events_pending",
			Help: "Current number of unpublished outbox events",
		}),
	}
}
