// Package batch turns uploaded contact spreadsheets into per-row
// artifact bundles.
//
// A batch run has three stages: the reader parses XLSX or CSV input
// into contact records using a header alias table, a worker pool
// generates each row's vCard and QR image in parallel, and the
// collector reassembles the results in spreadsheet order. The contract
// throughout is one bundle per input row: a row that fails to generate
// produces a bundle containing an error.txt, never a gap.
package batch
