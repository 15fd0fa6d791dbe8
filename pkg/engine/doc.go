// Package engine orchestrates content evaluation: plugin enrichment,
// safety categorization, brand compliance analysis, combined scoring,
// result caching, metrics, and history recording.
//
// The engine holds no per-request state; one Engine instance serves
// concurrent evaluation requests.
package engine
