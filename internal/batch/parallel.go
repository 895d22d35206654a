package batch

import (
	"context"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"codecard/internal/archive"
	"codecard/internal/logging"
	"codecard/internal/metrics"
	"codecard/internal/vcard"
	"codecard/internal/workers"
)

// rowJob is one spreadsheet row queued for generation.
type rowJob struct {
	index   int
	contact vcard.Contact
}

// rowResult carries the finished bundle back to the collector. err is
// informational only; failed rows still produce a bundle.
type rowResult struct {
	index  int
	bundle archive.Bundle
	err    error
}

// generator fans contact rows out to a worker pool and collects the
// resulting bundles back into row order.
type generator struct {
	opts       Options
	numWorkers int

	jobs    chan rowJob
	results chan rowResult

	wg sync.WaitGroup

	rowsProcessed atomic.Int64
	rowErrors     atomic.Int64
}

// poolSize picks the worker count: explicit option, then the
// BATCH_WORKERS override, then a CPU-based default. Generation is
// CPU-bound (QR rasterization), so the default tracks core count.
func poolSize(requested int) int {
	if requested > 0 {
		return requested
	}
	if override := os.Getenv("BATCH_WORKERS"); override != "" {
		if count, err := strconv.Atoi(override); err == nil && count > 0 {
			return count
		}
	}
	return workers.ForCPU(8)
}

func newGenerator(opts Options) *generator {
	numWorkers := poolSize(opts.NumWorkers)
	return &generator{
		opts:       opts,
		numWorkers: numWorkers,
		jobs:       make(chan rowJob, numWorkers*2),
		results:    make(chan rowResult, numWorkers*2),
	}
}

// run processes all contacts and returns one bundle per input row, in
// input order regardless of completion order.
func (g *generator) run(ctx context.Context, contacts []vcard.Contact) []archive.Bundle {
	logging.Info("Starting batch generation: %d rows, %d workers", len(contacts), g.numWorkers)
	startTime := time.Now()

	metrics.BatchWorkers.Set(float64(g.numWorkers))

	for i := 0; i < g.numWorkers; i++ {
		g.wg.Add(1)
		go g.worker(ctx, i)
	}

	// Collector writes each result into its row slot, so completion
	// order never matters.
	bundles := make([]archive.Bundle, len(contacts))
	var collectorWg sync.WaitGroup
	collectorWg.Add(1)
	go func() {
		defer collectorWg.Done()
		for result := range g.results {
			bundles[result.index] = result.bundle
		}
	}()

	// Enqueue rows; stop early on cancellation. Workers drain whatever
	// was queued before the channel closes.
enqueue:
	for i, contact := range contacts {
		select {
		case g.jobs <- rowJob{index: i, contact: contact}:
		case <-ctx.Done():
			logging.Warn("Batch generation cancelled after %d of %d rows queued", i, len(contacts))
			break enqueue
		}
	}
	close(g.jobs)

	g.wg.Wait()
	close(g.results)
	collectorWg.Wait()

	logging.Info("Batch generation complete: %d rows in %v (errors: %d)",
		g.rowsProcessed.Load(), time.Since(startTime), g.rowErrors.Load())

	return bundles
}

// worker pulls rows off the jobs channel and generates their bundles.
func (g *generator) worker(ctx context.Context, id int) {
	defer g.wg.Done()

	logging.Debug("Batch worker %d started", id)

	for job := range g.jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		bundle, err := buildBundle(&job.contact, job.index, g.opts)
		g.rowsProcessed.Add(1)
		metrics.BatchRowsProcessed.Inc()
		if err != nil {
			g.rowErrors.Add(1)
			metrics.BatchRowErrors.Inc()
			logging.Debug("Row %d failed: %v", job.index+1, err)
			bundle = errorBundle(&job.contact, job.index, err)
		}

		select {
		case g.results <- rowResult{index: job.index, bundle: bundle, err: err}:
		case <-ctx.Done():
			return
		}
	}

	logging.Debug("Batch worker %d finished", id)
}
