package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Product metrics
	ProductsCreated prometheus.Counter
	ProductsDeleted prometheus.Counter

	// Ledger metrics
	PurchasesRecorded prometheus.Counter
	SalesAdmitted     prometheus.Counter
	SalesRejected     *prometheus.CounterVec
	SaleDuration      prometheus.Histogram
	EntryQuantity     *prometheus.HistogramVec

	// Stock metrics
	StockCacheHits   prometheus.Counter
	StockCacheMisses prometheus.Counter

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec
	AuthFailures *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Product metrics
		ProductsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "stockledger_products_created_total",
			Help: "Total number of products created",
		}),
		ProductsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "stockledger_products_deleted_total",
			Help: "Total number of products deleted",
		}),

		// Ledger metrics
		PurchasesRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "stockledger_purchases_recorded_total",
			Help: "Total number of purchase entries recorded",
		}),
		SalesAdmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "stockledger_sales_admitted_total",
			Help: "Total number of sale entries admitted",
		}),
		SalesRejected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockledger_sales_rejected_total",
				Help: "Total number of sale entries rejected by reason",
			},
			[]string{"reason"},
		),
		SaleDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "stockledger_sale_duration_seconds",
			Help:    "Duration of sale admission checks",
			Buckets: prometheus.DefBuckets,
		}),
		EntryQuantity: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockledger_entry_quantity",
				Help:    "Quantities of recorded ledger entries",
				Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
			},
			[]string{"type"},
		),

		// Stock metrics
		StockCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "stockledger_stock_cache_hits_total",
			Help: "Total stock cache hits",
		}),
		StockCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "stockledger_stock_cache_misses_total",
			Help: "Total stock cache misses",
		}),

		// Authentication metrics
		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockledger_auth_attempts_total",
				Help: "Total authentication attempts",
			},
			[]string{"status"},
		),
		AuthFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockledger_auth_failures_total",
				Help: "Total authentication failures",
			},
			[]string{"reason"},
		),

		// Rate limiting metrics
		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockledger_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"ip"},
		),
	}
}
