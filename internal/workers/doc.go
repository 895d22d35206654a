// Package workers sizes worker pools for containerized environments.
//
// Go 1.19+ sets GOMAXPROCS from container CPU limits, while
// runtime.NumCPU() still reports the host count. The helpers here use
// GOMAXPROCS so batch encoding respects pod CPU limits, with an
// optional BATCH_WORKERS environment override.
package workers
