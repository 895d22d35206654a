package formats

import (
	"bytes"
	"path/filepath"
	"strings"
)

// ImageFormat represents the rendered output format of a generated code.
type ImageFormat string

const (
	// FormatPNG is a rasterized PNG image.
	FormatPNG ImageFormat = "png"
	// FormatSVG is a scalable vector image.
	FormatSVG ImageFormat = "svg"
)

// Symbology identifies a supported 1D barcode symbology.
type Symbology string

const (
	// SymbologyCode128 is the Code 128 symbology.
	SymbologyCode128 Symbology = "code128"
	// SymbologyEAN13 is the EAN-13 symbology.
	SymbologyEAN13 Symbology = "ean13"
)

// SheetFormat identifies the format of an uploaded spreadsheet.
type SheetFormat string

const (
	// SheetXLSX is an Office Open XML workbook.
	SheetXLSX SheetFormat = "xlsx"
	// SheetCSV is a comma-separated values file.
	SheetCSV SheetFormat = "csv"
	// SheetUnknown is anything else.
	SheetUnknown SheetFormat = "unknown"
)

// ParseImageFormat maps a user-supplied format name to an ImageFormat.
// Empty input defaults to PNG.
func ParseImageFormat(name string) (ImageFormat, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "png":
		return FormatPNG, true
	case "svg":
		return FormatSVG, true
	default:
		return "", false
	}
}

// ParseSymbology maps a user-supplied symbology name to a Symbology.
// Empty input defaults to Code 128.
func ParseSymbology(name string) (Symbology, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "code128", "code-128":
		return SymbologyCode128, true
	case "ean13", "ean-13":
		return SymbologyEAN13, true
	default:
		return "", false
	}
}

// ContentType returns the MIME type for an image format.
func (f ImageFormat) ContentType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	default:
		return "image/png"
	}
}

// Extension returns the file extension for an image format, with dot.
func (f ImageFormat) Extension() string {
	switch f {
	case FormatSVG:
		return ".svg"
	default:
		return ".png"
	}
}

// Well-known content types for non-image artifacts.
const (
	ContentTypeVCard = "text/vcard; charset=utf-8"
	ContentTypeZIP   = "application/zip"
)

// xlsxMagic is the ZIP local file header; XLSX workbooks are ZIP containers.
var xlsxMagic = []byte{0x50, 0x4b, 0x03, 0x04}

// DetectSheetFormat identifies a spreadsheet by filename extension,
// falling back to content sniffing when the extension is unhelpful.
func DetectSheetFormat(filename string, head []byte) SheetFormat {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return SheetXLSX
	case ".csv", ".txt":
		return SheetCSV
	}

	if bytes.HasPrefix(head, xlsxMagic) {
		return SheetXLSX
	}

	// Plausible CSV: printable text with at least one comma or newline
	// in the sniffed window.
	if len(head) > 0 && isMostlyText(head) {
		return SheetCSV
	}

	return SheetUnknown
}

func isMostlyText(data []byte) bool {
	for _, b := range data {
		if b == 0 {
			return false
		}
	}
	return true
}

// SanitizeFilename strips path separators and control characters from a
// user-supplied name so it is safe inside a Content-Disposition header
// or a ZIP entry name. Empty results fall back to the provided default.
func SanitizeFilename(name, fallback string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r == '/' || r == '\\' || r == ':':
			b.WriteRune('_')
		case r < 0x20 || r == 0x7f:
			continue
		case r == '"':
			continue
		default:
			b.WriteRune(r)
		}
	}
	cleaned := strings.TrimSpace(b.String())
	cleaned = strings.TrimLeft(cleaned, ".")
	if cleaned == "" {
		return fallback
	}
	return cleaned
}
