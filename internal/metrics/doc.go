// Package metrics provides Prometheus instrumentation for the codecard
// service. All metrics are prefixed with "codecard_" and registered via
// promauto against the default registry.
//
// Categories: HTTP request metrics (recorded by the middleware),
// artifact generation counters and timings, batch job metrics, and
// database query metrics. A [Collector] periodically refreshes the
// job-history gauges from a [StatsProvider].
//
// Call InitializeMetrics once at startup so every expected label
// combination is present on the first scrape.
package metrics
