package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Treasury metrics
	CreditsApplied    prometheus.Counter
	TransfersApplied  prometheus.Counter
	TransfersRejected prometheus.Counter
	OperationDuration prometheus.Histogram
	OperationAmount   prometheus.Histogram
	OperationErrors   *prometheus.CounterVec

	// Club metrics
	ClubsCreated   prometheus.Counter
	MembersCreated prometheus.Counter

	// Ledger metrics
	EntriesAppended        *prometheus.CounterVec
	ConsistencyChecks      prometheus.Counter
	ConsistencyDivergences prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec
	AuthFailures *prometheus.CounterVec

	// Idempotency metrics
	IdempotencyReplays prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Treasury metrics
		CreditsApplied: promauto.NewCounter(prometheus.CounterOpts{
			Name: "treasury_credits_applied_total",
			Help: "Total number of member credits applied",
		}),
		TransfersApplied: promauto.NewCounter(prometheus.CounterOpts{
			Name: "treasury_transfers_applied_total",
			Help: "Total number of fund transfers applied",
		}),
		TransfersRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "treasury_transfers_rejected_total",
			Help: "Total number of fund transfers rejected for insufficient funds",
		}),
		OperationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "treasury_operation_duration_seconds",
			Help:    "Duration of treasury operations",
			Buckets: prometheus.DefBuckets,
		}),
		OperationAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "treasury_operation_amount",
			Help:    "Absolute operation amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
		}),
		OperationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treasury_operation_errors_total",
				Help: "Total number of treasury operation errors by type",
			},
			[]string{"error_type"},
		),

		// Club metrics
		ClubsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "treasury_clubs_created_total",
			Help: "Total number of clubs created",
		}),
		MembersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "treasury_members_created_total",
			Help: "Total number of members created",
		}),

		// Ledger metrics
		EntriesAppended: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treasury_ledger_entries_total",
				Help: "Total ledger entries appended by operation type",
			},
			[]string{"operation_type"},
		),
		ConsistencyChecks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "treasury_consistency_checks_total",
			Help: "Total fund consistency checks run",
		}),
		ConsistencyDivergences: promauto.NewCounter(prometheus.CounterOpts{
			Name: "treasury_consistency_divergences_total",
			Help: "Total consistency checks that found a divergence",
		}),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treasury_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "treasury_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treasury_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "treasury_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "treasury_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treasury_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treasury_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treasury_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		// Authentication metrics
		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treasury_auth_attempts_total",
				Help: "Total authentication attempts",
			},
			[]string{"status"},
		),
		AuthFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treasury_auth_failures_total",
				Help: "Total authentication failures",
			},
			[]string{"reason"},
		),

		// Idempotency metrics
		IdempotencyReplays: promauto.NewCounter(prometheus.CounterOpts{
			Name: "treasury_idempotency_replays_total",
			Help: "Total requests answered from a stored idempotent response",
		}),
	}
}
