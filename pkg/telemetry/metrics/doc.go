// Package metrics provides Prometheus instrumentation for the
// evaluation engine: evaluation counts and latencies, score
// distributions, cache effectiveness, and plugin failures.
package metrics
