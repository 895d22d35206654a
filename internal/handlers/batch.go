package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"codecard/internal/archive"
	"codecard/internal/batch"
	"codecard/internal/database"
	"codecard/internal/formats"
	"codecard/internal/logging"
	"codecard/internal/vcard"
)

// UploadBatch accepts a multipart spreadsheet and responds with a ZIP
// archive holding one bundle per spreadsheet row.
func (h *Handlers) UploadBatch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, h.config.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.config.MaxUploadBytes); err != nil {
		writeJSONError(w, "upload too large or malformed", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSONError(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logging.Warn("failed to close upload: %v", closeErr)
		}
	}()

	opts, err := batchOptions(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := batch.Process(r.Context(), file, header.Filename, opts)
	if err != nil {
		h.recordBatchJob(r, header.Filename, nil, err)
		status := http.StatusInternalServerError
		if errors.Is(err, batch.ErrNoRows) || errors.Is(err, batch.ErrNoHeader) ||
			errors.Is(err, batch.ErrUnknownFormat) {
			status = http.StatusBadRequest
		}
		writeJSONError(w, err.Error(), status)
		return
	}

	var buf bytes.Buffer
	if err := archive.WriteZip(&buf, result.Bundles); err != nil {
		writeJSONError(w, "failed to build archive", http.StatusInternalServerError)
		return
	}

	h.recordBatchJob(r, header.Filename, result, nil)

	base := formats.SanitizeFilename(header.Filename, "batch")
	zipName := strings.TrimSuffix(base, filepath.Ext(base)) + ".zip"

	logging.Info("Batch %q: %d rows, %d row errors in %v",
		header.Filename, result.RowCount, result.Errors, time.Since(start))
	serveArtifact(w, buf.Bytes(), formats.ContentTypeZIP, zipName)
}

// batchOptions reads the generation options shared with the single
// endpoints from the upload form.
func batchOptions(r *http.Request) (batch.Options, error) {
	opts := batch.DefaultOptions()

	version, ok := vcard.ParseVersion(r.FormValue("version"))
	if !ok {
		return opts, errors.New("version must be 3.0 or 4.0")
	}
	opts.Version = version

	size, level, format, err := qrParams(r)
	if err != nil {
		return opts, err
	}
	opts.Size = size
	opts.Level = level
	opts.Format = format

	return opts, nil
}

// recordBatchJob writes the job outcome to history. Nothing here can
// fail the request; the archive is already built (or the error already
// chosen) by the time this runs.
func (h *Handlers) recordBatchJob(r *http.Request, filename string, result *batch.Result, jobErr error) {
	if h.db == nil {
		return
	}

	job := &database.Job{
		ID:        uuid.New().String(),
		Filename:  formats.SanitizeFilename(filename, "upload"),
		Format:    string(formats.DetectSheetFormat(filename, nil)),
		Status:    database.JobStatusCompleted,
		CreatedAt: time.Now().UTC(),
	}
	if result != nil {
		job.RowCount = result.RowCount
		job.BundleCount = len(result.Bundles)
	}
	if jobErr != nil {
		job.Status = database.JobStatusFailed
		job.Error = jobErr.Error()
	}

	if err := h.db.InsertJob(r.Context(), job); err != nil {
		logging.Warn("failed to record batch job: %v", err)
		return
	}
	if result != nil {
		if err := h.db.IncrementCounter(r.Context(), "batch_rows", result.RowCount); err != nil {
			logging.Debug("failed to increment batch_rows counter: %v", err)
		}
	}
}
