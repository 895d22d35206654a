package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"codecard/internal/encode"
	"codecard/internal/formats"
	"codecard/internal/payload"
)

// qrParams reads the shared QR form fields: size, level, format.
func qrParams(r *http.Request) (int, qrcode.RecoveryLevel, formats.ImageFormat, error) {
	size := encode.ClampSize(formInt(r, "size", encode.DefaultImageSize))

	level, ok := encode.ParseRecoveryLevel(r.FormValue("level"))
	if !ok {
		return 0, 0, "", errors.New("level must be one of L, M, Q, H")
	}

	format, ok := formats.ParseImageFormat(r.FormValue("format"))
	if !ok {
		return 0, 0, "", errors.New("format must be png or svg")
	}

	return size, level, format, nil
}

// serveQR encodes the payload and writes it as an image download.
func (h *Handlers) serveQR(w http.ResponseWriter, r *http.Request, kind, content string) {
	start := time.Now()

	size, level, format, err := qrParams(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	image, err := encode.QR(content, size, level, format)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, encode.ErrPayloadTooLarge) || errors.Is(err, encode.ErrEmptyPayload) {
			status = http.StatusBadRequest
		}
		writeJSONError(w, err.Error(), status)
		return
	}

	h.recordGeneration(r.Context(), kind, string(format), len(content), start)
	serveArtifact(w, image, format.ContentType(), "qr-code"+format.Extension())
}

// GenerateQR encodes free text, or a URL when the url field is set.
func (h *Handlers) GenerateQR(w http.ResponseWriter, r *http.Request) {
	content := r.FormValue("text")
	if raw := r.FormValue("url"); raw != "" {
		normalized, err := payload.URL(raw)
		if err != nil {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		content = normalized
	}
	if content == "" {
		writeJSONError(w, "text or url is required", http.StatusBadRequest)
		return
	}

	h.serveQR(w, r, "qr", content)
}

// GenerateWifiQR encodes a wifi network join payload.
func (h *Handlers) GenerateWifiQR(w http.ResponseWriter, r *http.Request) {
	auth, err := payload.ParseWifiAuth(r.FormValue("auth"))
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	hidden, _ := strconv.ParseBool(r.FormValue("hidden"))
	content, err := payload.Wifi(r.FormValue("ssid"), r.FormValue("password"), auth, hidden)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.serveQR(w, r, "qr", content)
}

// GenerateMailtoQR encodes a mailto payload with optional subject and body.
func (h *Handlers) GenerateMailtoQR(w http.ResponseWriter, r *http.Request) {
	content, err := payload.MailTo(r.FormValue("address"), r.FormValue("subject"), r.FormValue("body"))
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.serveQR(w, r, "qr", content)
}

// GenerateTelQR encodes a dialer payload.
func (h *Handlers) GenerateTelQR(w http.ResponseWriter, r *http.Request) {
	content, err := payload.Tel(r.FormValue("number"))
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.serveQR(w, r, "qr", content)
}

// GenerateSMSQR encodes an sms payload with an optional prefilled body.
func (h *Handlers) GenerateSMSQR(w http.ResponseWriter, r *http.Request) {
	content, err := payload.SMS(r.FormValue("number"), r.FormValue("body"))
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.serveQR(w, r, "qr", content)
}

// GenerateGeoQR encodes a geo coordinate payload.
func (h *Handlers) GenerateGeoQR(w http.ResponseWriter, r *http.Request) {
	lat, err := strconv.ParseFloat(r.FormValue("lat"), 64)
	if err != nil {
		writeJSONError(w, "lat must be a decimal coordinate", http.StatusBadRequest)
		return
	}
	lon, err := strconv.ParseFloat(r.FormValue("lon"), 64)
	if err != nil {
		writeJSONError(w, "lon must be a decimal coordinate", http.StatusBadRequest)
		return
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		writeJSONError(w, "coordinates out of range", http.StatusBadRequest)
		return
	}

	h.serveQR(w, r, "qr", payload.Geo(lat, lon))
}
