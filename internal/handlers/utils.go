package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"codecard/internal/logging"
	"codecard/internal/metrics"
)

// writeJSON encodes v as JSON and writes it to the response writer.
// Any encoding or write errors are logged since we typically cannot
// recover from them in an HTTP handler context.
func writeJSON(w http.ResponseWriter, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode JSON response: %v", err)
	}
}

// writeJSONError writes an error response as JSON with the given status code.
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	writeJSON(w, map[string]string{"error": message})
}

// writeJSONStatus writes a simple status response as JSON.
func writeJSONStatus(w http.ResponseWriter, status string) {
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, map[string]string{"status": status})
}

// serveArtifact writes a generated file as an attachment download.
// The filename must already be sanitized.
func serveArtifact(w http.ResponseWriter, data []byte, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(data); err != nil {
		logging.Error("failed to write artifact response: %v", err)
	}
}

// formInt reads an optional integer form field, returning fallback for
// missing or unparsable values.
func formInt(r *http.Request, key string, fallback int) int {
	raw := r.FormValue(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// recordGeneration updates the per-kind metrics and the persistent
// counter after a successful generation. The database write is best
// effort; losing a counter tick never fails the request.
func (h *Handlers) recordGeneration(ctx context.Context, kind, format string, payloadLen int, start time.Time) {
	metrics.GenerationsTotal.WithLabelValues(kind, format).Inc()
	metrics.GenerationDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	metrics.PayloadBytes.WithLabelValues(kind).Observe(float64(payloadLen))

	if h.db != nil {
		if err := h.db.IncrementCounter(ctx, kind, 1); err != nil {
			logging.Debug("failed to increment %s counter: %v", kind, err)
		}
	}
}
