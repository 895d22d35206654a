// Command batchgen generates vCard and QR bundles from a contact
// spreadsheet without running the server.
//
// Usage:
//
//	batchgen [flags] <spreadsheet>
//
// The spreadsheet may be XLSX or CSV with a header row mapping columns
// to contact fields. Output is a ZIP archive holding one directory per
// spreadsheet row, each with the row's .vcf file and a QR image of it.
// Rows that cannot be generated produce a directory containing an
// error.txt instead, so the archive always has one entry per row.
//
// Flags:
//
//	-o, --out            output ZIP path (default: input name with .zip)
//	    --vcard-version  vCard version, 3.0 or 4.0 (default 3.0)
//	    --size           QR image size in pixels
//	    --level          QR error correction level: L, M, Q, H
//	    --format         QR image format: png or svg
//	    --workers        worker count (0 = auto, BATCH_WORKERS honored)
package main
