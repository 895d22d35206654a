package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codecard_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "codecard_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "codecard_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Generation metrics
var (
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codecard_generations_total",
			Help: "Total number of generated artifacts by kind and output format",
		},
		[]string{"kind", "format"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "codecard_generation_duration_seconds",
			Help:    "Artifact generation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"kind"},
	)

	PayloadBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "codecard_payload_bytes",
			Help:    "Size of encoded text payloads in bytes",
			Buckets: []float64{16, 64, 128, 256, 512, 1024, 2048, 2953},
		},
		[]string{"kind"},
	)

	EncodeErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codecard_encode_errors_total",
			Help: "Total number of encoder failures by kind",
		},
		[]string{"kind"},
	)
)

// Batch metrics
var (
	BatchJobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codecard_batch_jobs_total",
			Help: "Total number of batch jobs by final status",
		},
		[]string{"status"},
	)

	BatchJobDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "codecard_batch_job_duration_seconds",
			Help:    "Batch job duration across all rows in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	BatchRowsProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "codecard_batch_rows_processed_total",
			Help: "Total number of spreadsheet rows processed",
		},
	)

	BatchRowErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "codecard_batch_row_errors_total",
			Help: "Total number of rows that produced an error bundle",
		},
	)

	BatchWorkers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "codecard_batch_workers",
			Help: "Worker count used by the most recent batch job",
		},
	)
)

// Database metrics
var (
	DBQueryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codecard_db_queries_total",
			Help: "Total number of database queries",
		},
		[]string{"operation", "status"},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "codecard_db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"operation"},
	)
)

// Job history metrics, fed by the collector
var (
	JobsRecorded = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "codecard_jobs_recorded",
			Help: "Number of batch jobs in the history store by status",
		},
		[]string{"status"},
	)

	RowsRecorded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "codecard_rows_recorded",
			Help: "Total spreadsheet rows across all recorded jobs",
		},
	)
)

// Application info metric
var (
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "codecard_app_info",
			Help: "Application information",
		},
		[]string{"version", "commit", "go_version"},
	)
)

// SetAppInfo sets the application info metric
func SetAppInfo(version, commit, goVersion string) {
	AppInfo.WithLabelValues(version, commit, goVersion).Set(1)
}
