package handlers

import (
	"errors"
	"net/http"
	"time"

	"codecard/internal/encode"
	"codecard/internal/formats"
)

// GenerateBarcode renders a 1D barcode PNG with the text printed
// underneath.
func (h *Handlers) GenerateBarcode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	text := r.FormValue("text")
	if text == "" {
		writeJSONError(w, "text is required", http.StatusBadRequest)
		return
	}

	symbology, ok := formats.ParseSymbology(r.FormValue("symbology"))
	if !ok {
		writeJSONError(w, "symbology must be code128 or ean13", http.StatusBadRequest)
		return
	}

	scale := encode.ClampBarcodeScale(formInt(r, "scale", 0))

	image, err := encode.Barcode(text, symbology, scale)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, encode.ErrEmptyBarcodeText) || errors.Is(err, encode.ErrBarcodeInput) {
			status = http.StatusBadRequest
		}
		writeJSONError(w, err.Error(), status)
		return
	}

	h.recordGeneration(r.Context(), "barcode", "png", len(text), start)
	serveArtifact(w, image, formats.FormatPNG.ContentType(), string(symbology)+".png")
}
