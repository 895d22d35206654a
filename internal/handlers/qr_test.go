package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestGenerateQR(t *testing.T) {
	h := newTestHandlers(t)

	rec := postForm(h.GenerateQR, url.Values{"text": {"hello world"}})
	assertPNGDownload(t, rec)
}

func TestGenerateQRSVG(t *testing.T) {
	h := newTestHandlers(t)

	rec := postForm(h.GenerateQR, url.Values{
		"text":   {"hello world"},
		"format": {"svg"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
	if !strings.Contains(rec.Body.String(), "<svg") {
		t.Error("response body is not SVG")
	}
}

func TestGenerateQRFromURL(t *testing.T) {
	h := newTestHandlers(t)

	// A bare domain gets an https scheme before encoding.
	rec := postForm(h.GenerateQR, url.Values{"url": {"example.com"}})
	assertPNGDownload(t, rec)
}

func TestGenerateQRValidation(t *testing.T) {
	h := newTestHandlers(t)

	tests := []struct {
		name string
		form url.Values
	}{
		{"missing text", url.Values{}},
		{"bad level", url.Values{"text": {"x"}, "level": {"Z"}}},
		{"bad format", url.Values{"text": {"x"}, "format": {"bmp"}}},
		{"oversized payload", url.Values{"text": {strings.Repeat("x", 4000)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postForm(h.GenerateQR, tt.form)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestGenerateWifiQR(t *testing.T) {
	h := newTestHandlers(t)

	rec := postForm(h.GenerateWifiQR, url.Values{
		"ssid":     {"HomeNet"},
		"password": {"hunter2"},
		"auth":     {"WPA"},
	})
	assertPNGDownload(t, rec)

	rec = postForm(h.GenerateWifiQR, url.Values{"password": {"hunter2"}})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing ssid: status = %d, want 400", rec.Code)
	}

	rec = postForm(h.GenerateWifiQR, url.Values{"ssid": {"x"}, "auth": {"ROT13"}})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad auth: status = %d, want 400", rec.Code)
	}
}

func TestGenerateMailtoQR(t *testing.T) {
	h := newTestHandlers(t)

	rec := postForm(h.GenerateMailtoQR, url.Values{
		"address": {"ada@example.com"},
		"subject": {"hello"},
	})
	assertPNGDownload(t, rec)

	rec = postForm(h.GenerateMailtoQR, url.Values{"subject": {"hello"}})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing address: status = %d, want 400", rec.Code)
	}
}

func TestGenerateTelQR(t *testing.T) {
	h := newTestHandlers(t)

	rec := postForm(h.GenerateTelQR, url.Values{"number": {"+49 30 123456"}})
	assertPNGDownload(t, rec)

	rec = postForm(h.GenerateTelQR, url.Values{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing number: status = %d, want 400", rec.Code)
	}
}

func TestGenerateSMSQR(t *testing.T) {
	h := newTestHandlers(t)

	rec := postForm(h.GenerateSMSQR, url.Values{
		"number": {"+49 30 123456"},
		"body":   {"on my way"},
	})
	assertPNGDownload(t, rec)
}

func TestGenerateGeoQR(t *testing.T) {
	h := newTestHandlers(t)

	rec := postForm(h.GenerateGeoQR, url.Values{
		"lat": {"52.52"},
		"lon": {"13.405"},
	})
	assertPNGDownload(t, rec)

	tests := []struct {
		name string
		form url.Values
	}{
		{"missing lat", url.Values{"lon": {"13.4"}}},
		{"non-numeric", url.Values{"lat": {"north"}, "lon": {"13.4"}}},
		{"out of range", url.Values{"lat": {"123"}, "lon": {"13.4"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postForm(h.GenerateGeoQR, tt.form)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestGenerateBarcode(t *testing.T) {
	h := newTestHandlers(t)

	rec := postForm(h.GenerateBarcode, url.Values{"text": {"ORDER-9921"}})
	assertPNGDownload(t, rec)

	rec = postForm(h.GenerateBarcode, url.Values{
		"text":      {"4006381333931"},
		"symbology": {"ean13"},
		"scale":     {"3"},
	})
	assertPNGDownload(t, rec)
}

func TestGenerateBarcodeValidation(t *testing.T) {
	h := newTestHandlers(t)

	tests := []struct {
		name string
		form url.Values
	}{
		{"missing text", url.Values{}},
		{"bad symbology", url.Values{"text": {"x"}, "symbology": {"qr"}}},
		{"bad ean digits", url.Values{"text": {"123"}, "symbology": {"ean13"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postForm(h.GenerateBarcode, tt.form)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}
