// Package handlers provides HTTP request handlers for the generation API.
//
// It includes handlers for:
//   - QR code generation from text, URLs, and scheme payloads
//   - 1D barcode rendering
//   - vCard construction and scannable business cards
//   - Spreadsheet batch uploads returning ZIP archives
//   - Shareable landing pages and their QR links
//   - Job history, health checks, and build information
package handlers
