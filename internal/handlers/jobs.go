package handlers

import (
	"net/http"

	"codecard/internal/database"
)

// JobsResponse wraps the job history listing.
type JobsResponse struct {
	Jobs  []database.Job `json:"jobs"`
	Count int            `json:"count"`
}

// StatsResponse aggregates job history and generation counters.
type StatsResponse struct {
	JobsCompleted int            `json:"jobsCompleted"`
	JobsFailed    int            `json:"jobsFailed"`
	TotalRows     int            `json:"totalRows"`
	Generations   map[string]int `json:"generations"`
}

// ListJobs returns recent batch jobs, newest first.
func (h *Handlers) ListJobs(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		writeJSONError(w, "job history is disabled", http.StatusServiceUnavailable)
		return
	}

	jobs, err := h.db.ListJobs(r.Context(), formInt(r, "limit", 0))
	if err != nil {
		writeJSONError(w, "failed to list jobs", http.StatusInternalServerError)
		return
	}
	if jobs == nil {
		jobs = []database.Job{}
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, JobsResponse{Jobs: jobs, Count: len(jobs)})
}

// GetStats returns aggregate history stats and per-kind generation
// counters.
func (h *Handlers) GetStats(w http.ResponseWriter, r *http.Request) {
	response := StatsResponse{Generations: map[string]int{}}

	if h.db != nil {
		stats := h.db.GetStats()
		response.JobsCompleted = stats.JobsCompleted
		response.JobsFailed = stats.JobsFailed
		response.TotalRows = stats.TotalRows

		counters, err := h.db.Counters(r.Context())
		if err == nil {
			response.Generations = counters
		}
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, response)
}
