// Package encode turns text payloads into QR code and barcode images.
//
// QR matrix construction and barcode symbology are delegated to
// third-party encoders; this package adds payload size guards, pixel
// size clamping, SVG emission from the module matrix, and the
// human-readable label strip under 1D barcodes.
package encode
