package encode

import (
	"errors"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"codecard/internal/formats"
	"codecard/internal/metrics"
)

const (
	// MaxPayloadBytes is the QR byte-mode capacity at the lowest error
	// correction level. Larger payloads cannot be encoded at all, so
	// they are rejected before reaching the encoder.
	MaxPayloadBytes = 2953

	// MinImageSize and MaxImageSize clamp the requested pixel size.
	MinImageSize = 64
	MaxImageSize = 2048

	// DefaultImageSize is used when the request does not specify one.
	DefaultImageSize = 512
)

// ErrPayloadTooLarge is returned for payloads over MaxPayloadBytes.
var ErrPayloadTooLarge = errors.New("payload exceeds QR capacity")

// ErrEmptyPayload is returned when there is nothing to encode.
var ErrEmptyPayload = errors.New("payload is empty")

// ParseRecoveryLevel maps the single-letter error correction names to
// the encoder's levels. Empty input defaults to M.
func ParseRecoveryLevel(s string) (qrcode.RecoveryLevel, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return qrcode.Low, true
	case "", "M":
		return qrcode.Medium, true
	case "Q":
		return qrcode.High, true
	case "H":
		return qrcode.Highest, true
	default:
		return 0, false
	}
}

// ClampSize forces a requested pixel size into the supported range,
// substituting the default for zero.
func ClampSize(size int) int {
	if size == 0 {
		return DefaultImageSize
	}
	if size < MinImageSize {
		return MinImageSize
	}
	if size > MaxImageSize {
		return MaxImageSize
	}
	return size
}

// QR renders a payload as a QR code in the requested format. PNG
// output is size×size pixels; SVG output scales freely and treats
// size only as the declared viewport.
func QR(content string, size int, level qrcode.RecoveryLevel, format formats.ImageFormat) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyPayload
	}
	if len(content) > MaxPayloadBytes {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrPayloadTooLarge, len(content), MaxPayloadBytes)
	}

	size = ClampSize(size)

	code, err := qrcode.New(content, level)
	if err != nil {
		metrics.EncodeErrors.WithLabelValues("qr").Inc()
		return nil, fmt.Errorf("failed to encode QR payload: %w", err)
	}

	switch format {
	case formats.FormatSVG:
		return renderSVG(code.Bitmap(), size), nil
	default:
		data, err := code.PNG(size)
		if err != nil {
			metrics.EncodeErrors.WithLabelValues("qr").Inc()
			return nil, fmt.Errorf("failed to render QR image: %w", err)
		}
		return data, nil
	}
}
