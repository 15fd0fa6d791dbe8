// Package evaluation defines the core value objects of the content
// evaluation engine: validated content, risk levels, issues, and the
// safety, compliance, and combined evaluation results.
//
// All types in this package are pure, serializable values with no
// behavior beyond construction-time validation and derived accessors.
// They are created once per evaluation and never mutated afterwards,
// which makes them safe to cache, persist, and hand to formatter
// plugins without copying.
//
// The analyzers, categorizer, aggregator, and orchestrating engine live
// in sub-packages and in pkg/engine; they consume and produce the types
// declared here.
package evaluation
