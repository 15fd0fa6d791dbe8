// BrandGuard is a content evaluation engine for brand safety and brand
// compliance.
//
// It evaluates text content against configurable safety categories and
// brand guideline documents, providing:
//   - Multi-category safety risk categorization with per-category tolerances
//   - Brand tone, voice, and terminology compliance scoring
//   - Combined safety/compliance decisions with configurable weights
//   - Cached results, evaluation history, and Prometheus metrics
//
// Usage:
//
//	# Evaluate a piece of content against a brand
//	brandguard evaluate --text "Our product delivers results." --brand acme
//
//	# Safety-only evaluation
//	brandguard evaluate --text "..." --safety-only
//
//	# Validate brand guideline files
//	brandguard brands lint --dir brands/
//
//	# Query past evaluations
//	brandguard history query --brand acme --limit 20
//
//	# Show version information
//	brandguard version
package main

func main() {
	Execute()
}
