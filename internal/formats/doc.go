// Package formats defines the artifact and upload formats the service
// understands: image output formats, barcode symbologies, and
// spreadsheet formats, along with their content types, extensions,
// and filename sanitization rules.
package formats
