// Package telemetry groups the observability subpackages: structured
// logging setup and Prometheus metrics for the evaluation engine.
package telemetry
