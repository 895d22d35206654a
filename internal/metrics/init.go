package metrics

// InitializeMetrics pre-populates the expected label combinations so
// every metric is exported from the first Prometheus scrape.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	kinds := []string{"qr", "barcode", "vcard"}
	imageFormats := []string{"png", "svg"}

	for _, kind := range kinds {
		GenerationDuration.WithLabelValues(kind)
		PayloadBytes.WithLabelValues(kind)
		EncodeErrors.WithLabelValues(kind)
	}

	for _, format := range imageFormats {
		GenerationsTotal.WithLabelValues("qr", format)
	}
	GenerationsTotal.WithLabelValues("barcode", "png")
	GenerationsTotal.WithLabelValues("vcard", "vcf")

	for _, status := range []string{"completed", "failed"} {
		BatchJobsTotal.WithLabelValues(status)
		JobsRecorded.WithLabelValues(status)
	}

	for _, op := range []string{"initialize_schema", "insert_job", "list_jobs", "job_stats", "increment_counter"} {
		DBQueryTotal.WithLabelValues(op, "success")
		DBQueryTotal.WithLabelValues(op, "error")
		DBQueryDuration.WithLabelValues(op)
	}
}
