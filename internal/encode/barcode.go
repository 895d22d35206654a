package encode

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/ean"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"codecard/internal/formats"
	"codecard/internal/metrics"
)

const (
	// barcodeHeight is the bar height in pixels before the label strip.
	barcodeHeight = 80

	// labelStripHeight leaves room for the human-readable line.
	labelStripHeight = 18

	// MinBarcodeScale and MaxBarcodeScale bound the per-module width.
	MinBarcodeScale = 1
	MaxBarcodeScale = 8

	// DefaultBarcodeScale is used when the request does not specify one.
	DefaultBarcodeScale = 2
)

// ErrEmptyBarcodeText is returned when there is nothing to encode.
var ErrEmptyBarcodeText = errors.New("barcode text is empty")

// ErrBarcodeInput wraps encoder rejections of the input text, such as
// an EAN-13 with the wrong digit count or characters Code 128 cannot
// represent.
var ErrBarcodeInput = errors.New("barcode text cannot be encoded")

// ClampBarcodeScale forces a requested module scale into range,
// substituting the default for zero.
func ClampBarcodeScale(scale int) int {
	if scale == 0 {
		return DefaultBarcodeScale
	}
	if scale < MinBarcodeScale {
		return MinBarcodeScale
	}
	if scale > MaxBarcodeScale {
		return MaxBarcodeScale
	}
	return scale
}

// Barcode renders text as a 1D barcode PNG with the encoded text drawn
// beneath the bars. Symbology-level constraints (EAN-13 digit count
// and checksum) are enforced by the encoder, not here.
func Barcode(text string, symbology formats.Symbology, scale int) ([]byte, error) {
	if text == "" {
		return nil, ErrEmptyBarcodeText
	}
	scale = ClampBarcodeScale(scale)

	var (
		code barcode.Barcode
		err  error
	)
	switch symbology {
	case formats.SymbologyEAN13:
		code, err = ean.Encode(text)
	default:
		code, err = code128.Encode(text)
	}
	if err != nil {
		metrics.EncodeErrors.WithLabelValues("barcode").Inc()
		return nil, fmt.Errorf("%w: %s: %v", ErrBarcodeInput, symbology, err)
	}

	width := code.Bounds().Dx() * scale
	scaled, err := barcode.Scale(code, width, barcodeHeight)
	if err != nil {
		metrics.EncodeErrors.WithLabelValues("barcode").Inc()
		return nil, fmt.Errorf("failed to scale barcode: %w", err)
	}

	labeled := drawLabel(scaled, text)

	var buf bytes.Buffer
	if err := png.Encode(&buf, labeled); err != nil {
		return nil, fmt.Errorf("failed to render barcode image: %w", err)
	}
	return buf.Bytes(), nil
}

// drawLabel composes the scaled barcode above a white strip carrying
// the encoded text, centered, in the fixed 7x13 face.
func drawLabel(code image.Image, text string) *image.RGBA {
	bounds := code.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()+labelStripHeight))

	draw.Draw(out, out.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(out, bounds, code, bounds.Min, draw.Src)

	face := basicfont.Face7x13
	textWidth := font.MeasureString(face, text).Ceil()
	x := (bounds.Dx() - textWidth) / 2
	if x < 0 {
		x = 0
	}

	drawer := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(x),
			Y: fixed.I(bounds.Dy() + labelStripHeight - 5),
		},
	}
	drawer.DrawString(text)

	return out
}
