package metrics

import (
	"time"

	"codecard/internal/logging"
)

// StatsProvider interface for collecting job history stats
type StatsProvider interface {
	GetStats() Stats
}

// Stats holds the current job history statistics
type Stats struct {
	JobsCompleted int
	JobsFailed    int
	TotalRows     int
}

// Collector periodically collects and updates job history metrics
type Collector struct {
	statsProvider StatsProvider
	interval      time.Duration
	stopChan      chan struct{}
}

// NewCollector creates a new metrics collector
func NewCollector(provider StatsProvider, interval time.Duration) *Collector {
	return &Collector{
		statsProvider: provider,
		interval:      interval,
		stopChan:      make(chan struct{}),
	}
}

// Start begins the metrics collection loop
func (c *Collector) Start() {
	go c.collectLoop()
}

// Stop stops the metrics collection
func (c *Collector) Stop() {
	close(c.stopChan)
}

func (c *Collector) collectLoop() {
	// Collect immediately on start
	c.collect()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.collect()
		case <-c.stopChan:
			return
		}
	}
}

func (c *Collector) collect() {
	if c.statsProvider == nil {
		return
	}

	stats := c.statsProvider.GetStats()

	JobsRecorded.WithLabelValues("completed").Set(float64(stats.JobsCompleted))
	JobsRecorded.WithLabelValues("failed").Set(float64(stats.JobsFailed))
	RowsRecorded.Set(float64(stats.TotalRows))

	logging.Debug("Metrics collected: jobs_completed=%d, jobs_failed=%d, rows=%d",
		stats.JobsCompleted, stats.JobsFailed, stats.TotalRows)
}
