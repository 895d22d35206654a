// Package database stores batch job history and generation counters
// in SQLite. Generated artifacts themselves are never persisted; only
// the record that a batch ran, its row counts, and aggregate counters
// for the stats endpoint.
package database
