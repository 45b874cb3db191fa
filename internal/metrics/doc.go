// Package metrics provides Prometheus metrics for monitoring an export run.
//
// Key metrics:
//   - Units processed, by kind (equity, curve) and status (ok, failed)
//   - Archive entries written, by archive family
//   - Per-unit processing latency
//
// All methods are safe on a nil *Metrics so callers can run without metrics.
package metrics
